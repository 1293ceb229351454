// Package flagx helps several components share os.Args without stepping on
// each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to allowedFlags,
// together with their values.
//
// Both spellings are recognised:
//
//	-c conf.json
//	--config=conf.json
//
// A token that follows an allowed flag is taken as its value unless it starts
// with "-". The result is never nil.
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

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag returns the config file path given with -c or -config, or ""
// when neither is present. Other arguments are ignored, so callers can keep
// parsing their own flags afterwards.
func ConfigFileFlag() string {
	return stringFlag([]string{"-c", "-config"}, "config", "c")
}

// EnvFileFlag returns the dotenv path given with -e or -env, or "".
func EnvFileFlag() string {
	return stringFlag([]string{"-e", "-env"}, "env", "e")
}

func stringFlag(allowed []string, long, short string) string {
	var value string

	args := FilterArgs(os.Args[1:], allowed)

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.StringVar(&value, long, "", "")
	fs.StringVar(&value, short, "", "")
	_ = fs.Parse(args)

	return value
}
