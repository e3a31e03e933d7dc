package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/session"
	"github.com/arifsetiawan/womshop/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate.
//
// Field-level validation failures (empty or too-short input) and login
// rejections are rendered as messages, not returned: the form stays usable
// and the user simply tries again. Only I/O errors propagate. The password
// is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Masukkan username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.session.Login(ctx, username, string(password))
	if err == nil {
		snap := a.session.Snapshot()
		fmt.Fprintf(a.out, "Selamat datang, %s\n", snap.User.DisplayName())
		return nil
	}

	var verr *session.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(a.out, "%s: %s\n", verr.Field, verr.Message)
		return nil
	}

	fmt.Fprintln(a.out, api.ResolveMessage(err, session.MsgLoginFailed))
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Anda telah keluar")
	return nil
}

// WhoAmI prints the authenticated user.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsLoggedIn {
		fmt.Fprintln(a.out, "Belum login")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", snap.User.DisplayName(), snap.User.Email)
	return nil
}
