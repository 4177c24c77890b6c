package cli

import (
	"errors"
	"fmt"
	"strings"
)

// errHelp is returned by scanArgs when a help request is reached.
var errHelp = errors.New("cli: help requested")

// scanArgs walks args left to right the way getopt does and stops at the
// first token that settles the outcome:
//
//   - -h/--help                    → errHelp
//   - -m/--mode as the last token  → ErrNoMode
//   - an unknown option            → ErrInvalidOption
//
// A --mode value is consumed without validation, so "-m BOGUS -h" still asks
// for help while "-m -h" sets the mode to "-h". Positional arguments are
// skipped; cobra rejects them afterwards. "--" ends option processing.
// nil means nothing decisive was found and cobra takes over.
func scanArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return nil
		case strings.HasPrefix(a, "--"):
			name, _, hasValue := strings.Cut(a[2:], "=")
			switch name {
			case "help":
				if !hasValue {
					return errHelp
				}
			case "verbose":
			case "mode":
				if !hasValue {
					if i+1 == len(args) {
						return fmt.Errorf("%w: --mode needs a value", ErrNoMode)
					}
					i++
				}
			default:
				return fmt.Errorf("%w: --%s", ErrInvalidOption, name)
			}
		case len(a) > 1 && a[0] == '-':
			consumed, err := scanShorthands(a[1:], i+1 < len(args))
			if err != nil {
				return err
			}
			if consumed {
				i++
			}
		}
	}

	return nil
}

// scanShorthands handles one cluster such as "-vh" or "-mMST". It reports
// whether the cluster consumes the following argument as the mode value.
func scanShorthands(cluster string, haveNext bool) (bool, error) {
	for j := 0; j < len(cluster); j++ {
		switch c := cluster[j]; c {
		case 'h':
			return false, errHelp
		case 'v':
			if j+1 < len(cluster) && cluster[j+1] == '=' {
				return false, nil
			}
		case 'm':
			if j+1 < len(cluster) {
				return false, nil
			}
			if !haveNext {
				return false, fmt.Errorf("%w: -m needs a value", ErrNoMode)
			}
			return true, nil
		default:
			return false, fmt.Errorf("%w: -%c", ErrInvalidOption, c)
		}
	}

	return false, nil
}
