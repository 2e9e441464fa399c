package ffmpeg

import (
	"fmt"
	"os"
	"strings"

	"github.com/user/ffcmd/internal/params"
)

// UnescapedFile marks an output target the caller asserts is already
// shell-safe; its raw string is used verbatim in the command line.
type UnescapedFile string

// NullDevice returns the platform null device as an unescaped output
// target, used to discard pass-one output in two-pass encodes.
func NullDevice() UnescapedFile {
	return UnescapedFile(os.DevNull)
}

// CLICommand assembles the full command line:
//
//	<binary> <prepend args> -i <input> <args> <output>
//
// The input argument is omitted when inputFile is empty. The output may
// be a plain string (shell-quoted), an UnescapedFile (verbatim), or nil
// (omitted); any other type is an INVALID_ARGUMENT error. Runs of two or
// more spaces collapse to one and the result is trimmed, so empty
// optional segments never leave doubled spaces behind.
func (a *Adapter) CLICommand(arguments []string, inputFile string, outputFile any, prependArguments []string) (string, error) {
	var outputArg string
	switch out := outputFile.(type) {
	case nil:
	case UnescapedFile:
		outputArg = string(out)
	case string:
		outputArg = Quote(out)
	default:
		return "", params.NewError(params.ErrCodeInvalidArgument,
			fmt.Sprintf("unsupported output file type %T", outputFile), nil)
	}

	var inputArg string
	if inputFile != "" {
		inputArg = "-i " + Quote(inputFile)
	}

	segments := []string{a.cfg.BinaryPath()}
	segments = append(segments, prependArguments...)
	segments = append(segments, inputArg)
	segments = append(segments, arguments...)
	segments = append(segments, outputArg)

	cmd := strings.Join(segments, " ")
	return strings.Join(strings.Fields(cmd), " "), nil
}
