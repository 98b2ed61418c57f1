package main

import (
	"errors"
	"flag"
	"fmt"

	"phoenixarts/internal/session"
)

func (a *app) signup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	gender := fs.String("gender", "", "gender")
	age := fs.Int("age", 0, "age")
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password (min 6 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAuth)
	if err != nil || !ok {
		return err
	}
	u, err := a.sess.Signup(session.SignupParams{
		Name:     *name,
		Gender:   *gender,
		Age:      *age,
		Username: *username,
		Password: *password,
	})
	if errors.Is(err, session.ErrUsernameTaken) || errors.Is(err, session.ErrPasswordTooShort) {
		fmt.Println("signup failed:", err)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("account created for %s, please login\n", u.Username)
	return nil
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAuth)
	if err != nil || !ok {
		return err
	}
	u, err := a.sess.Login(*username, *password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		fmt.Println("login failed:", err)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("welcome %s\n", u.Name)
	return nil
}

func (a *app) logout() error {
	if err := a.sess.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func (a *app) whoami() error {
	ok, err := a.gate(session.PageRegular)
	if err != nil || !ok {
		return err
	}
	u, err := a.sess.Current()
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", u.Name, u.Username)
	return nil
}

func (a *app) adminLogin(args []string) error {
	fs := flag.NewFlagSet("admin-login", flag.ContinueOnError)
	username := fs.String("username", "", "admin username")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAuth)
	if err != nil || !ok {
		return err
	}
	if err := a.sess.AdminLogin(*username, *password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			fmt.Println("admin login failed:", err)
			return nil
		}
		return err
	}
	fmt.Println("admin session started")
	return nil
}

func (a *app) adminLogout() error {
	if err := a.sess.AdminLogout(); err != nil {
		return err
	}
	fmt.Println("admin session ended")
	return nil
}

func (a *app) page(args []string) error {
	fs := flag.NewFlagSet("page", flag.ContinueOnError)
	class := fs.String("class", "regular", "page class: auth|admin|regular")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var pc session.PageClass
	switch *class {
	case "auth":
		pc = session.PageAuth
	case "admin":
		pc = session.PageAdmin
	case "regular":
		pc = session.PageRegular
	default:
		return fmt.Errorf("unknown page class %q", *class)
	}
	d, err := a.sess.Authorize(pc)
	if err != nil {
		return err
	}
	fmt.Printf("%s page -> %s\n", pc, d)
	return nil
}
