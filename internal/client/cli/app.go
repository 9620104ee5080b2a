// Package cli implements the interactive command-line client for the wiki
// platform: account registration, login, and article management over the
// two service APIs.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AaronBlvde/wiki-platform/internal/client/api"
	"github.com/AaronBlvde/wiki-platform/internal/client/config"
	"github.com/AaronBlvde/wiki-platform/internal/common"
)

type App struct {
	config *config.Config
	client *api.Client
	login  string
	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.IdentityAddr, c.WikiAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Wiki CLI (type 'help' for commands)")
	runREPL(ctx, a, a.showLogin, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) showLogin() string {
	if a.login == "" {
		return "anonymous"
	}
	return a.login
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Register(ctx, username, string(password)); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn("Registered! Now login.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Login(ctx, username, string(password)); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	a.login = username
	printlnFn("Success!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.login = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	pages, err := a.client.ListPages(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, p := range pages {
		printlnFn(fmt.Sprintf("%d\t%s\t(by %s)", p.ID, p.Title, p.Author))
	}
	return nil
}

func (a *App) Catalogs(ctx context.Context) error {
	catalogs, err := a.client.ListCatalogs(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, c := range catalogs {
		printlnFn(fmt.Sprintf("%d\t%s", c.ID, c.Name))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter article title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "Enter article text", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	page, err := a.client.CreatePage(ctx, title, content, nil)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Created article %d", page.ID))
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, "Enter article id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("error: invalid id %q", raw)
		return err
	}

	if err := a.client.DeletePage(ctx, id); err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			printlnFn("Only the author can delete this article")
			return err
		}
		log.Printf("Error: %s", err.Error())
		return err
	}

	printlnFn("Deleted")
	return nil
}
