package toolchain

import (
	"github.com/pkg/errors"
)

// ErrBadPlaceholder is returned for a positional placeholder other than `$1`, `$2` or `$3`.
var ErrBadPlaceholder = errors.New("bad placeholder")

// Placeholders are filled from three lists: extra flags (`$1`), inputs (`$2`) and outputs (`$3`).
const numPlaceholders = 3

// Compose fills in the positional placeholders of a finalized argument vector. An argument
// starting with `$N` is replaced by the items of `lists[N-1]`, the first of which keeps whatever
// followed the placeholder. An argument whose list is empty disappears, and so do empty arguments.
func Compose(args []string, lists ...[]string) ([]string, error) {
	if len(lists) > numPlaceholders {
		return nil, errors.Wrapf(ErrBadPlaceholder, "got %d lists, at most %d can be used", len(lists), numPlaceholders)
	}

	result := []string{}
	for _, arg := range args {
		if arg == "" {
			continue
		}
		if len(arg) < 2 || arg[0] != '$' || arg[1] < '0' || arg[1] > '9' {
			result = append(result, arg)
			continue
		}

		n := int(arg[1] - '0')
		if n < 1 || n > numPlaceholders {
			return nil, errors.Wrapf(ErrBadPlaceholder, "'%s'", arg)
		}
		if n > len(lists) || len(lists[n-1]) == 0 {
			continue
		}
		items := lists[n-1]
		result = append(result, items[0]+arg[2:])
		for _, item := range items[1:] {
			if item != "" {
				result = append(result, item)
			}
		}
	}
	return result, nil
}
