package cli

import (
	"context"
	"os"

	"github.com/michaelwitz/smart-fit/internal/client/api"
	"github.com/michaelwitz/smart-fit/internal/common"
)

// Register prompts for the new-account fields and creates the account. The
// server answers either with a token (the user is logged in right away) or
// with a "verify your email" acknowledgment.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone number (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.Register(ctx, api.RegisterRequest{
		Email:       email,
		Password:    string(password),
		FullName:    fullName,
		PhoneNumber: phone,
	})
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	if resp.Token == "" && resp.Message != "" {
		printlnFn(resp.Message)
	} else {
		printlnFn("Success!")
	}
	return nil
}
