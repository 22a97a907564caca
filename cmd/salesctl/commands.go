package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/models"
)

var (
	errUsage        = errors.New("unknown command, run 'salesctl help'")
	errEmailMissing = errors.New("login needs an email")
)

type cli struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	in        io.Reader
	out       io.Writer
	// password is used by login instead of prompting when set.
	password string
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.printUsage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		c.printUsage()
		return nil
	case "version":
		fmt.Fprintln(c.out, c.buildInfo.String())
		return nil
	}

	// Every other command starts from the stored session.
	if err := c.services.Sessions.Bootstrap(ctx); err != nil {
		return err
	}

	switch cmd {
	case "login":
		return c.cmdLogin(ctx, rest)
	case "logout":
		c.services.Sessions.Logout(ctx)
		color.New(color.FgGreen).Fprintln(c.out, "Logged out")
		return nil
	case "whoami":
		return c.cmdWhoami()
	case "clients":
		return c.cmdClients(ctx, rest)
	case "agents":
		return c.cmdAgents(ctx, rest)
	case "delete-client":
		return c.cmdDelete(ctx, models.KindClient, rest)
	case "delete-agent":
		return c.cmdDelete(ctx, models.KindAgent, rest)
	default:
		return errUsage
	}
}

func (c *cli) printUsage() {
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(c.out, "Usage: salesctl [flags] <command> [args]")
	fmt.Fprintln(c.out)
	yellow.Fprintln(c.out, "Commands:")
	fmt.Fprintln(c.out, "  login <email>              Log in; the password is read from SALESCTL_PASSWORD or stdin")
	fmt.Fprintln(c.out, "  logout                     Forget the stored session")
	fmt.Fprintln(c.out, "  whoami                     Show the logged-in administrator")
	fmt.Fprintln(c.out, "  clients [--hidden]         List clients")
	fmt.Fprintln(c.out, "  agents [--hidden]          List agents")
	fmt.Fprintln(c.out, "  delete-client <id>         Delete a client")
	fmt.Fprintln(c.out, "  delete-agent <id>          Delete an agent")
	fmt.Fprintln(c.out, "  version                    Show build information")
	fmt.Fprintln(c.out)
	yellow.Fprintln(c.out, "Flags:")
	fmt.Fprintln(c.out, "  -a host:port  -d sqlite path  -c config.json  -hash-key key")
}

func (c *cli) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errEmailMissing
	}
	email := strings.TrimSpace(args[0])

	password := c.password
	if password == "" {
		fmt.Fprint(c.out, "Password: ")
		line, err := bufio.NewReader(c.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	user, err := c.services.Sessions.Login(ctx, email, password)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(c.out, "Logged in as %s\n", user.DisplayName())
	return nil
}

func (c *cli) cmdWhoami() error {
	user := c.services.Sessions.CurrentUser()
	if !c.services.Sessions.IsLoggedIn() || user == nil {
		return service.ErrNotLoggedIn
	}

	cyan := color.New(color.FgCyan)
	cyan.Fprintln(c.out, "Identity")
	cyan.Fprintln(c.out, "--------")
	fmt.Fprintf(c.out, "Name:   %s\n", user.DisplayName())
	fmt.Fprintf(c.out, "Email:  %s\n", user.Email)
	fmt.Fprintf(c.out, "Role:   %s\n", valueOr(user.Role, "(none)"))
	return nil
}

func (c *cli) cmdClients(ctx context.Context, args []string) error {
	hidden, err := parseHidden("clients", args)
	if err != nil {
		return err
	}
	if !c.services.Sessions.IsLoggedIn() {
		return service.ErrNotLoggedIn
	}

	clients, err := c.services.Entities.ListClients(ctx, hidden)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tAGENT")
	for _, cl := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cl.ID, cl.DisplayName(), valueOr(cl.Email, "-"), valueOr(cl.Phone, "-"), valueOr(cl.Agent.String(), "-"))
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%d clients\n", len(clients))
	return nil
}

func (c *cli) cmdAgents(ctx context.Context, args []string) error {
	hidden, err := parseHidden("agents", args)
	if err != nil {
		return err
	}
	if !c.services.Sessions.IsLoggedIn() {
		return service.ErrNotLoggedIn
	}

	agents, err := c.services.Entities.ListAgents(ctx, hidden)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tAREA")
	for _, a := range agents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.DisplayName(), valueOr(a.Email, "-"), valueOr(a.Phone, "-"), valueOr(a.Area, "-"))
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%d agents\n", len(agents))
	return nil
}

func (c *cli) cmdDelete(ctx context.Context, kind models.EntityKind, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return service.ErrMissingID
	}
	if !c.services.Sessions.IsLoggedIn() {
		return service.ErrNotLoggedIn
	}

	id := models.ID(strings.TrimSpace(args[0]))
	if err := c.services.Entities.Delete(ctx, kind, id); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(c.out, "Deleted %s %s\n", kind, id)
	return nil
}

func parseHidden(name string, args []string) (bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	hidden := fs.Bool("hidden", false, "list hidden records")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	return *hidden, nil
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
