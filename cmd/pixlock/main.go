package main

import (
	"fmt"
	"github.com/saylorsolutions/pixlock/pkg/imgio"
	"github.com/saylorsolutions/pixlock/pkg/scramble"
	flag "github.com/spf13/pflag"
	"os"
	"path/filepath"
	"strings"
)

var version = "dev"

func main() {
	if len(os.Args) == 1 {
		usage()
		return
	}
	switch os.Args[1] {
	case "encrypt":
		process(scramble.Encrypt, os.Args[2:])
	case "decrypt":
		process(scramble.Decrypt, os.Args[2:])
	case "version", "--version", "-v":
		echo("pixlock %s", version)
	case "help", "--help", "-h":
		usage()
	default:
		usage()
		fatal("Unknown command %q, expected encrypt or decrypt", os.Args[1])
	}
}

func usage() {
	fmt.Printf(`
pixlock reversibly obfuscates image pixel data with a password-derived XOR mask and byte shuffle.
This is obfuscation, not encryption: it keeps image content away from casual viewing only.
The same password and mode must be given to decrypt what encrypt produced.

USAGE:  pixlock encrypt|decrypt -i INPUT -o OUTPUT [-p PASSWORD] [-m MODE]

COMMANDS:
    encrypt    Obfuscate the input image.
    decrypt    Restore an image obfuscated with the same password and mode.
    version    Print the pixlock version.

FLAGS:
%s
NOTES:
    PNG output is byte-exact. Writing encrypted output as JPEG will corrupt it, since JPEG is lossy.
Use .png or the raw .pxr container for encrypted files. An output path with no extension gets .png appended.
If -p is not given, the password is read from an interactive masked prompt.
`, commonFlags("pixlock").FlagUsages())
}

func commonFlags(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringP("in", "i", "", "Input image path (png, jpeg, gif, or pxr).")
	flags.StringP("out", "o", "", "Output image path (png, jpeg, or pxr).")
	flags.StringP("password", "p", "", "Password used to derive the XOR key and shuffle seed.")
	flags.StringP("mode", "m", "both", "Which transform(s) to apply: xor, shuffle, or both.")
	flags.BoolP("help", "h", false, "Prints this usage information.")
	return flags
}

func process(dir scramble.Direction, args []string) {
	flags := commonFlags("pixlock " + dir.String())
	flags.Usage = usage
	if err := flags.Parse(args); err != nil {
		usage()
		fatal("Error parsing flags: %v", err)
	}
	if help, _ := flags.GetBool("help"); help {
		usage()
		return
	}

	// Validate everything that can be validated before touching any file.
	mode, _ := flags.GetString("mode")
	set, err := scramble.ParseTransformSet(mode)
	if err != nil {
		fatal("Invalid mode: %v", err)
	}
	inPath, _ := flags.GetString("in")
	outPath, _ := flags.GetString("out")
	if inPath == "" {
		fatal("Missing required -i/--in argument")
	}
	if outPath == "" {
		fatal("Missing required -o/--out argument")
	}

	password, _ := flags.GetString("password")
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			fatal("Failed to read password: %v", err)
		}
		if password == "" {
			fatal("No password given")
		}
	}

	if dir == scramble.Encrypt {
		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".jpg", ".jpeg":
			echo("Warning: JPEG is lossy and will not decrypt cleanly, prefer .png or .pxr")
		}
	}

	img, err := imgio.Load(inPath)
	if err != nil {
		fatal("Failed to load %s: %v", inPath, err)
	}
	img.Pix, err = scramble.Apply(img.Pix, password, set, dir)
	if err != nil {
		fatal("Transform failed: %v", err)
	}
	written, err := imgio.Save(img, outPath)
	if err != nil {
		fatal("Failed to save %s: %v", outPath, err)
	}
	echo("%s complete: %s -> %s (mode: %s, %dx%d %s)", dir, inPath, written, set, img.Width, img.Height, img.Layout)
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Printf(msg, args...)
}
