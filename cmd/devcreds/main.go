// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const progname = "devcreds"

const defaultConfigFile = "./devcreds.yaml"

var version string

// Use when printing err/diag msgs
var le = log.New(os.Stderr, "", 0)

type options struct {
	conf Config

	noVerify bool
	useTKey  bool
	outFile  string
	verbose  bool
}

func main() {
	if version == "" {
		version = readBuildInfo()
	}

	var configFile string
	var flagSource SourceConfig
	var flagSigner SignerConfig
	var keysFile string
	var opts options
	var versionOnly, helpOnly bool

	pflag.CommandLine.SetOutput(os.Stderr)
	pflag.CommandLine.SortFlags = false
	pflag.StringVar(&configFile, "config", defaultConfigFile,
		"`PATH` to configuration file.")
	pflag.StringVar(&flagSource.Header, "header", "",
		"Read credentials from the developer credentials header at `PATH`.")
	pflag.StringVar(&flagSource.Manifest, "manifest", "",
		"Read credentials from the YAML manifest at `PATH`.")
	pflag.StringVar(&flagSource.Flash, "flash", "",
		"Read a credential blob from the flash partition or image at `PATH`.")
	pflag.Int64Var(&flagSource.Offset, "offset", 0,
		"Byte `OFFSET` of the credential blob in the flash partition (commands: show, check, pack).")
	pflag.StringVar(&keysFile, "keys", "",
		"Trust the provisioning keys in the file at `PATH` instead of the compiled in ones.")
	pflag.BoolVar(&opts.noVerify, "no-verify", false,
		"Don't check the signature of a credential blob.")
	pflag.StringVar(&flagSigner.Seed, "seed", "",
		"Sign with the Ed25519 seed in the file at `PATH` (commands: pack, keygen).")
	pflag.BoolVar(&opts.useTKey, "tkey", false,
		"Sign with a TKey (commands: pack, pubkey).")
	pflag.StringVar(&flagSigner.App, "app", "",
		"Signer device app binary at `PATH` to load on the TKey.")
	pflag.StringVar(&flagSigner.Port, "port", "",
		"Set serial port device `PATH`. If this is not passed, auto-detection will be attempted.")
	pflag.StringVarP(&opts.outFile, "out", "o", "",
		"Write the blob to `PATH` (command: pack).")
	pflag.BoolVar(&opts.verbose, "verbose", false,
		"Enable verbose output.")
	pflag.BoolVar(&versionOnly, "version", false, "Output version information.")
	pflag.BoolVar(&helpOnly, "help", false, "Output this help.")
	pflag.Usage = func() {
		desc := fmt.Sprintf(`Usage: %s command [flags...]

Commands:
  show    Load device bootstrap credentials and show what they hold. The
          private key is never printed.

  check   Only check that the credentials are complete and valid.

  pack    Pack credentials into a blob for a flash partition, signed with
          --seed or --tkey unless neither is given.

  pubkey  Output the public key of the TKey signer, for the keys file.

  keygen  Generate an Ed25519 seed for signing blobs, written to --seed.

  keys    List the trusted provisioning keys.

Without --header, --manifest or --flash, the compiled in developer
credentials are used.`, progname)

		le.Printf("%s\n\nFlags:\n%s\n", desc, pflag.CommandLine.FlagUsagesWrapped(86))
	}
	pflag.Parse()

	if helpOnly {
		pflag.Usage()
		os.Exit(0)
	}
	if versionOnly {
		fmt.Printf("%s %s\n", progname, version)
		os.Exit(0)
	}

	if pflag.NArg() != 1 {
		if pflag.NArg() > 1 {
			le.Printf("Unexpected argument: %s\n\n", strings.Join(pflag.Args()[1:], " "))
		} else {
			le.Printf("Please pass a command: show, check, pack, pubkey, keygen, or keys\n\n")
		}
		pflag.Usage()
		os.Exit(2)
	}

	initLogging(opts.verbose)
	defer klog.Flush()

	conf, err := loadConfig(configFile, pflag.CommandLine.Lookup("config").Changed)
	if err != nil {
		le.Printf("%v\n", err)
		os.Exit(1)
	}

	// Flags override the config file. Any source flag replaces the
	// configured source as a whole.
	if flagSource.Header != "" || flagSource.Manifest != "" || flagSource.Flash != "" {
		conf.Source = flagSource
	} else if pflag.CommandLine.Lookup("offset").Changed {
		conf.Source.Offset = flagSource.Offset
	}
	if keysFile != "" {
		conf.Keys = keysFile
	}
	if flagSigner.Seed != "" {
		conf.Signer.Seed = flagSigner.Seed
	}
	if flagSigner.App != "" {
		conf.Signer.App = flagSigner.App
	}
	if flagSigner.Port != "" {
		conf.Signer.Port = flagSigner.Port
	}
	opts.conf = conf

	cmd := pflag.Args()[0]

	if cmd != "pack" && opts.outFile != "" {
		le.Printf("Cannot use --out with this command.\n")
		os.Exit(2)
	}
	if cmd != "pack" && cmd != "pubkey" && opts.useTKey {
		le.Printf("Cannot use --tkey with this command.\n")
		os.Exit(2)
	}

	var exit int

	switch cmd {
	case "show":
		exit = show(opts)
	case "check":
		exit = check(opts)
	case "pack":
		exit = pack(opts)
	case "pubkey":
		exit = pubkey(opts)
	case "keygen":
		exit = keygen(opts)
	case "keys":
		exit = listKeys(opts)
	default:
		le.Printf("%s is not a valid command.\n", cmd)
		pflag.Usage()
		exit = 2
	}

	klog.Flush()
	os.Exit(exit)
}

// initLogging routes the library packages' klog output to stderr,
// with debug messages only when verbose.
func initLogging(verbose bool) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)

	_ = fs.Set("logtostderr", "true")
	if verbose {
		_ = fs.Set("v", "1")
	}
}

func readBuildInfo() string {
	version := "devel without BuildInfo"
	if info, ok := debug.ReadBuildInfo(); ok {
		sb := strings.Builder{}
		sb.WriteString("devel")
		for _, setting := range info.Settings {
			if strings.HasPrefix(setting.Key, "vcs") {
				sb.WriteString(fmt.Sprintf(" %s=%s", setting.Key, setting.Value))
			}
		}
		version = sb.String()
	}
	return version
}
