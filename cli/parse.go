package cli

import (
	"fmt"
	"strings"

	svcerrors "github.com/ottertune/svcctl/common/errors"
)

// ParseBoolArg interprets an optional boolean positional argument. Only a
// closed set of forms is accepted; anything else fails before any external
// command runs.
func ParseBoolArg(args []string, def bool) (bool, error) {
	if len(args) == 0 {
		return def, nil
	}
	switch strings.ToLower(args[0]) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, svcerrors.NewError(
		fmt.Errorf("cannot parse %q as bool (accepted: true, false, 1, 0)", args[0]),
		svcerrors.InvalidArgumentExitCode)
}
