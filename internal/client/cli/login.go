package cli

import (
	"context"
	"os"

	"github.com/michaelwitz/smart-fit/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the API.
// On success the issued token has already been persisted by the API client;
// the REPL prompt picks the session up on its next read.
//
// The password byte slice is wiped before returning. Input errors are
// returned unchanged; API failures are printed and nil is returned so the
// REPL keeps running.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	if resp.User != nil && resp.User.FullName != "" {
		printlnFn("Welcome back, " + resp.User.FullName + "!")
	} else {
		printlnFn("Login successful")
	}
	return nil
}
