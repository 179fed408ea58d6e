package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saylorsolutions/cryptopals/cmd/internal"
	"github.com/saylorsolutions/cryptopals/pkg/codec"
	"github.com/saylorsolutions/cryptopals/pkg/xor"
	flag "github.com/spf13/pflag"
)

const maxLineSize = 16 << 20

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		internal.Fatal("%v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		helpFlag    bool
		versionFlag bool
		keyFlag     string
		hexKeyFlag  bool
	)
	flags := flag.NewFlagSet("cryptopals", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the version of this tool.")
	flags.StringVarP(&keyFlag, "key", "k", "", "Key used by the repxor command.")
	flags.BoolVarP(&hexKeyFlag, "hex-key", "x", false, "Interpret --key as hex text rather than plain text.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
cryptopals converts and combines byte sequences for cryptographic exercises.
Byte sequences are given and printed as hex text unless stated otherwise.

USAGE:  cryptopals [FLAGS] COMMAND [ARGS...]

COMMANDS:
    hex2b64 [HEX...]     Prints the Base64 encoding of each HEX argument, or of each line of stdin.
    b642hex [BASE64...]  Prints the hex encoding of each BASE64 argument, or of each line of stdin.
    fixedxor HEX HEX     Prints the XOR of two equal-length byte sequences.
    repxor [TEXT...]     Prints the repeating-key XOR of TEXT (joined with spaces), or of all of stdin, using --key.
    genkey LENGTH        Prints a secure random key of LENGTH bytes.

FLAGS:
%s`, flags.FlagUsages())
	}
	if len(args) == 0 {
		flags.Usage()
		return nil
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag {
		flags.Usage()
		return nil
	}
	if versionFlag {
		_, _ = fmt.Fprintln(stdout, version)
		return nil
	}
	if flags.NArg() == 0 {
		return errors.New("missing required COMMAND argument")
	}

	cmdArgs := flags.Args()[1:]
	switch cmd := flags.Arg(0); cmd {
	case "hex2b64":
		return convertEach(cmdArgs, stdin, stdout, codec.HexToBase64)
	case "b642hex":
		return convertEach(cmdArgs, stdin, stdout, base64ToHex)
	case "fixedxor":
		return fixedXor(cmdArgs, stdout)
	case "repxor":
		key, err := parseKey(keyFlag, hexKeyFlag)
		if err != nil {
			return err
		}
		return repeatingXor(cmdArgs, key, stdin, stdout)
	case "genkey":
		return genKey(cmdArgs, stdout)
	default:
		return fmt.Errorf("unknown command '%s'", cmd)
	}
}

func base64ToHex(text string) (string, error) {
	data, err := codec.DecodeBase64(text)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(data), nil
}

// convertEach applies conv to every argument, or to every non-blank line of stdin when there are no arguments.
func convertEach(args []string, stdin io.Reader, stdout io.Writer, conv func(string) (string, error)) error {
	emit := func(in string) error {
		out, err := conv(in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	if len(args) > 0 {
		for _, arg := range args {
			if err := emit(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}
		if err := emit(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func fixedXor(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("fixedxor requires exactly 2 HEX arguments, got %d", len(args))
	}
	a, err := codec.DecodeHex(args[0])
	if err != nil {
		return fmt.Errorf("first argument: %w", err)
	}
	b, err := codec.DecodeHex(args[1])
	if err != nil {
		return fmt.Errorf("second argument: %w", err)
	}
	out, err := xor.Combine(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, codec.EncodeHex(out))
	return err
}

func parseKey(key string, isHex bool) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.New("repxor requires a --key")
	}
	if !isHex {
		return []byte(key), nil
	}
	data, err := codec.DecodeHex(key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode --key: %w", err)
	}
	return data, nil
}

func repeatingXor(args []string, key []byte, stdin io.Reader, stdout io.Writer) error {
	var (
		out []byte
		err error
	)
	if len(args) > 0 {
		out, err = xor.RepeatingKey([]byte(strings.Join(args, " ")), key)
	} else {
		var r xor.Reader
		r, err = xor.NewReader(stdin, key)
		if err != nil {
			return err
		}
		out, err = io.ReadAll(r)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, codec.EncodeHex(out))
	return err
}

func genKey(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("genkey requires exactly 1 LENGTH argument, got %d", len(args))
	}
	length, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid LENGTH '%s': %w", args[0], err)
	}
	key, err := xor.GenKey(length)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, codec.EncodeHex(key))
	return err
}
