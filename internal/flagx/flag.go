// Package flagx lets several packages read their own flags from os.Args
// without tripping over each other's definitions.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belong to allowedFlags, keeping
// their values.
//
// Supported forms:
//
//	-c conf.json
//	-config=conf.json
//
// A value is only taken from the next token when that token does not start
// with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// StringFlag extracts a single string flag registered under every name in
// names (e.g. "c" and "config") from args. Parse errors yield "".
func StringFlag(args []string, names ...string) string {
	prefixed := make([]string, 0, len(names))
	for _, n := range names {
		prefixed = append(prefixed, "-"+n)
	}

	var value string
	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	if err := fs.Parse(FilterArgs(args, prefixed)); err != nil {
		return ""
	}
	return value
}

// ConfigFileFlag returns the JSON config path given via -c or -config.
func ConfigFileFlag() string {
	return StringFlag(os.Args[1:], "config", "c")
}

// EnvFileFlag returns the dotenv path given via -e or -env.
func EnvFileFlag() string {
	return StringFlag(os.Args[1:], "env", "e")
}
