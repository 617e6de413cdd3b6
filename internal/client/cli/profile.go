package cli

import (
	"context"
	"fmt"
)

// Profile fetches and prints the authenticated user's profile from the API.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.GetProfile(ctx)
	if err != nil {
		printlnFn(userMessage(err))
		return nil
	}

	printlnFn(fmt.Sprintf("Name:  %s", p.FullName))
	printlnFn(fmt.Sprintf("Email: %s", p.Email))
	if p.PhoneNumber != nil {
		printlnFn(fmt.Sprintf("Phone: %s", *p.PhoneNumber))
	}
	if p.City != nil {
		printlnFn(fmt.Sprintf("City:  %s", *p.City))
	}
	if p.Timezone != nil {
		printlnFn(fmt.Sprintf("TZ:    %s", *p.Timezone))
	}
	return nil
}

// WhoAmI prints the identity view derived from the locally stored token,
// without a network round-trip.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.session.CurrentSession(ctx)
	if sess == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("User ID: %s", sess.UserID))
	printlnFn(fmt.Sprintf("Email:   %s", sess.Email))
	if sess.FullName != "" {
		printlnFn(fmt.Sprintf("Name:    %s", sess.FullName))
	}
	printlnFn(fmt.Sprintf("Session expires: %s", sess.ExpiresAt.Local()))
	return nil
}
