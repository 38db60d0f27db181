// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package tkey

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const UDISize = 8

// UDI is the Unique Device Identifier of a TKey, big endian.
type UDI struct {
	VendorID   uint16
	ProductID  uint8 // 6 bits
	ProductRev uint8 // 6 bits
	Serial     uint32
	Bytes      [UDISize]byte
}

func (u UDI) Hex() string {
	return hex.EncodeToString(u.Bytes[:])
}

func (u UDI) String() string {
	return fmt.Sprintf("0x%s(BE) VendorID: 0x%04x ProductID: %d ProductRev: %d Serial: %d",
		u.Hex(), u.VendorID, u.ProductID, u.ProductRev, u.Serial)
}

// fromRawLE parses the two little endian uint32s the firmware
// protocol hands out.
func (u *UDI) fromRawLE(udiLE []byte) error {
	if l := len(udiLE); l != UDISize {
		return ErrWrongUDILen
	}

	vpr := binary.LittleEndian.Uint32(udiLE[0:4])
	if reserved := uint8((vpr >> 28) & 0xf); reserved != 0 {
		return ErrWrongUDIData
	}
	u.VendorID = uint16((vpr >> 12) & 0xffff)
	u.ProductID = uint8((vpr >> 6) & 0x3f)
	u.ProductRev = uint8(vpr & 0x3f)
	u.Serial = binary.LittleEndian.Uint32(udiLE[4:8])

	binary.BigEndian.PutUint32(u.Bytes[0:4], vpr)
	binary.BigEndian.PutUint32(u.Bytes[4:8], u.Serial)

	return nil
}
