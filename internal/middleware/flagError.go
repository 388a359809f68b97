package middleware

import (
	"errors"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
)

// ErrLogged is returned once the user-facing message has been printed, so
// the caller only has to set the exit code.
var ErrLogged = errors.New("already logged")

// FlagComboError prints the message of code and returns ErrLogged.
func FlagComboError(code errs.Code, a ...any) error {
	logger.LogError("%s", errs.Msg(code, a...))
	return ErrLogged
}

func IsLogged(err error) bool {
	return errors.Is(err, ErrLogged)
}
