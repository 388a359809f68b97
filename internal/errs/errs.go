package errs

import "fmt"

type Code string

const (
	SourceOrFastest    Code = "SOURCE_OR_FASTEST"
	SourceWithFastest  Code = "SOURCE_WITH_FASTEST"
	AllMirrorsTimedOut Code = "ALL_MIRRORS_TIMED_OUT"
	MirrorNotInCatalog Code = "MIRROR_NOT_IN_CATALOG"
	RestoreWithoutCopy Code = "RESTORE_WITHOUT_BACKUP"
	ToolNotSupported   Code = "TOOL_NOT_SUPPORTED"
)

var messages = map[Code]string{
	SourceOrFastest: `Missing target: provide a mirror name or use --fastest

Examples:
  devhub use %[1]s Aliyun       # switch %[1]s to a named mirror
  devhub use %[1]s --fastest    # benchmark and switch to the fastest one`,

	SourceWithFastest: `Invalid flag combination: cannot use --fastest with a mirror name

Usage:
  - Switch to a specific mirror:
      devhub use %[1]s %[2]s
  - Let devhub pick:
      devhub use %[1]s --fastest

Reason:
  --fastest selects the mirror itself, a name selects it explicitly.`,

	AllMirrorsTimedOut: `All mirrors of %[1]s are unreachable, configuration left untouched

Next steps:
  - Check your network connection and retry
  - Pick a mirror manually:
      devhub mirrors %[1]s
      devhub use %[1]s <name>`,

	MirrorNotInCatalog: `Mirror %[2]q is not known for %[1]s

Run 'devhub mirrors %[1]s' or 'devhub test %[1]s' to see the available mirrors.`,

	RestoreWithoutCopy: `No backup found for %[1]s (%[2]s)

Nothing was changed. devhub only keeps backups of files it modified itself.`,

	ToolNotSupported: `Unknown tool %[1]q%[2]s

Supported tools: %[3]s`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
