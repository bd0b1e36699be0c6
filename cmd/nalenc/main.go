package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/AsfhtgkDavid/nalenc"
	"github.com/AsfhtgkDavid/nalenc/keyfile"
)

// VERSION is injected by build flags; left as the development default
// for local builds.
var VERSION = "SELFBUILD"

func main() {
	os.Exit(run(os.Args))
}

// run builds and executes the CLI app for the given argv, returning a
// process exit code. Factored out of main so it can be driven directly
// from script-based integration tests.
func run(args []string) int {
	app := cli.NewApp()
	app.Name = "nalenc"
	app.Usage = "generate NALEnc keys and encrypt/decrypt files with them"
	app.Version = VERSION
	app.Commands = []cli.Command{
		genKeyCommand(),
		encryptCommand(),
		decryptCommand(),
		benchCommand(),
	}

	if err := app.Run(args); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func genKeyCommand() cli.Command {
	return cli.Command{
		Name:      "genkey",
		Usage:     "generate a new random 512-byte key",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "ascii",
				Usage: "write the key in ASCII-armoured base64 form instead of raw binary",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.NewExitError("genkey: missing output path", 1)
			}

			k, err := keyfile.Generate()
			if err != nil {
				return errors.Wrap(err, "genkey")
			}

			if c.Bool("ascii") {
				if err := keyfile.SaveASCII(path, k); err != nil {
					return errors.Wrap(err, "genkey")
				}
			} else {
				if err := keyfile.SaveBinary(path, k); err != nil {
					return errors.Wrap(err, "genkey")
				}
			}

			fmt.Printf("wrote a new key to %s\n", path)
			return nil
		},
	}
}

func encryptCommand() cli.Command {
	return cli.Command{
		Name:      "encrypt",
		Usage:     "encrypt a file with a NALEnc key",
		ArgsUsage: "<in> <out>",
		Flags:     []cli.Flag{keyFlag()},
		Action: func(c *cli.Context) error {
			return runCrypt(c, true)
		},
	}
}

func decryptCommand() cli.Command {
	return cli.Command{
		Name:      "decrypt",
		Usage:     "decrypt a file with a NALEnc key",
		ArgsUsage: "<in> <out>",
		Flags:     []cli.Flag{keyFlag()},
		Action: func(c *cli.Context) error {
			return runCrypt(c, false)
		},
	}
}

func keyFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "key",
		Usage: "path to the NALEnc key file (binary or ASCII-armoured)",
	}
}

func runCrypt(c *cli.Context, encrypt bool) error {
	keyPath := c.String("key")
	if keyPath == "" {
		return cli.NewExitError("missing --key", 1)
	}
	in := c.Args().Get(0)
	out := c.Args().Get(1)
	if in == "" || out == "" {
		return cli.NewExitError("usage: nalenc encrypt|decrypt --key <keyfile> <in> <out>", 1)
	}

	k, err := keyfile.Load(keyPath)
	if err != nil {
		return errors.Wrap(err, "load key")
	}

	cipher, err := nalenc.New(k)
	if err != nil {
		return errors.Wrap(err, "construct cipher")
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	var result []byte
	if encrypt {
		result, err = cipher.Encrypt(data)
	} else {
		result, err = cipher.Decrypt(data)
	}
	if err != nil {
		return errors.Wrap(err, "process")
	}

	if err := atomicWriteFile(out, result, 0o600); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

func benchCommand() cli.Command {
	return cli.Command{
		Name:      "bench",
		Usage:     "time a single encrypt/decrypt round trip for a given plaintext size",
		ArgsUsage: "<size-bytes>",
		Flags:     []cli.Flag{keyFlag()},
		Action: func(c *cli.Context) error {
			keyPath := c.String("key")
			if keyPath == "" {
				return cli.NewExitError("missing --key", 1)
			}
			if c.Args().First() == "" {
				return cli.NewExitError("usage: nalenc bench --key <keyfile> <size-bytes>", 1)
			}

			var size int
			if _, err := fmt.Sscanf(c.Args().First(), "%d", &size); err != nil || size < 0 {
				return cli.NewExitError("size must be a non-negative integer", 1)
			}

			k, err := keyfile.Load(keyPath)
			if err != nil {
				return errors.Wrap(err, "load key")
			}
			cipher, err := nalenc.New(k)
			if err != nil {
				return errors.Wrap(err, "construct cipher")
			}

			msg := make([]byte, size)
			start := time.Now()
			ct, err := cipher.Encrypt(msg)
			if err != nil {
				return errors.Wrap(err, "encrypt")
			}
			encDur := time.Since(start)

			start = time.Now()
			if _, err := cipher.Decrypt(ct); err != nil {
				return errors.Wrap(err, "decrypt")
			}
			decDur := time.Since(start)

			fmt.Printf("plaintext=%d ciphertext=%d encrypt=%s decrypt=%s\n", size, len(ct), encDur, decDur)
			return nil
		},
	}
}
