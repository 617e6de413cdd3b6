package cli

import (
	"context"
	"os"

	"github.com/michaelwitz/smart-fit/internal/common"
)

// ForgotPassword asks the server to send a reset token to the given address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	ack, err := a.api.RequestPasswordReset(ctx, email)
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	printlnFn(ack.Message)
	return nil
}

// ResetPassword completes the reset flow with the token from the e-mail.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ack, err := a.api.ResetPassword(ctx, token, string(password))
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	printlnFn(ack.Message)
	return nil
}

// VerifyEmail confirms an address with a verification token.
func (a *App) VerifyEmail(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter verification token", os.Stdout)
	if err != nil {
		return err
	}

	ack, err := a.api.VerifyEmail(ctx, token)
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	printlnFn(ack.Message)
	return nil
}
