package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrewstalin/liberror"
	"github.com/andrewstalin/liberror/internal/config"
	"github.com/andrewstalin/liberror/internal/logger"
)

// Error identities for bad invocations.
var (
	errNoCodes = liberror.ErrorInfo{Code: 0x0001, Description: "no error codes given"}
	errBadCode = liberror.ErrorInfo{Code: 0x0002, Description: "not a decimal or 0x-prefixed code"}
)

// usageError is the errstr command's own error family.
type usageError struct {
	liberror.Base
}

func (e *usageError) Category() string { return "ERRSTR" }
func (e *usageError) Error() string    { return e.Render(e) }

func newUsageError(info liberror.ErrorInfo, context string) *usageError {
	return &usageError{Base: liberror.FromInfo(info, liberror.WithContext(context))}
}

func main() {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, cfg.JSON)
	logger.Debug().Msg("Config loaded")

	if err := run(cfg, args, os.Stdout); err != nil {
		if lerr, ok := err.(liberror.Error); ok {
			logger.WithError(lerr).Msg("invocation failed")
		} else {
			logger.Error().Err(err).Msg("invocation failed")
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	if err := liberror.If(len(args) == 0, newUsageError(errNoCodes, "parsing arguments")); err != nil {
		return err
	}

	for _, arg := range args {
		code, err := parseCode(arg)
		if err != nil {
			return newUsageError(errBadCode, "parsing "+strconv.Quote(arg))
		}

		logger.Debug().Uint32("code", uint32(code)).Msg("rendering system error")
		fmt.Fprintln(out, liberror.System(code, cfg.Context).Error())
	}

	return nil
}

// parseCode accepts decimal or 0x-prefixed hexadecimal codes.
func parseCode(s string) (liberror.Code, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}

	return liberror.Code(v), nil
}
