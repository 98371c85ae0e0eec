package main

import (
	"os"
	"strings"

	"taskplane/internal/cli"
)

func looksLikeTaskID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "task-") && len(s) > len("task-")
}

// expandTaskShortcut lets a pasted id act as a command:
// `taskplane [flags] task-<id>` becomes `taskplane [flags] tasks show task-<id>`.
// Rewriting happens before cobra parses argv, since cobra would read the id
// as an unknown subcommand. Only the two persistent flags can legitimately
// precede the id; anything else means the user typed a real command line and
// argv is left untouched.
func expandTaskShortcut(argv []string) []string {
	for i := 1; i < len(argv); i++ {
		switch a := argv[i]; {
		case a == "--dir":
			i++ // the flag's value follows
		case a == "--pretty",
			strings.HasPrefix(a, "--dir="),
			strings.HasPrefix(a, "--pretty="):
			// nothing to skip
		case a == "--":
			if i+1 < len(argv) && looksLikeTaskID(argv[i+1]) {
				return spliceTasksShow(argv, i+1)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			// Unknown flag; let cobra produce the error for it.
			return argv
		case looksLikeTaskID(a):
			return spliceTasksShow(argv, i)
		default:
			return argv
		}
	}
	return argv
}

func spliceTasksShow(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:at]...)
	out = append(out, "tasks", "show")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = expandTaskShortcut(os.Args)

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
