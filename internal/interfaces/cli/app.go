// Package cli front-end de línea de comandos del CRM. Cada comando declara el
// permiso que necesita; sin permiso se imprime "acceso denegado" y no se
// llama a la API.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/application/validation"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	"github.com/jhoicas/shop-crm/internal/domain/permission"
	"github.com/jhoicas/shop-crm/pkg/logger"
)

// Códigos de salida.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitUsage  = 2
	ExitDenied = 3
)

// MsgAccessDenied texto impreso cuando el guard rechaza un comando.
const MsgAccessDenied = "acceso denegado"

// Deps dependencias del CLI.
type Deps struct {
	Auth      *usecase.AuthUseCase
	Shops     *usecase.ShopUseCase
	Employees *usecase.EmployeeUseCase
	Items     *usecase.ItemUseCase
	Users     *usecase.UserUseCase
	Dashboard *usecase.DashboardUseCase
	Reports   *usecase.ReportUseCase
	Navigator *Navigator
	Out       io.Writer
	Err       io.Writer
	Log       *logger.Logger
}

// App intérprete de comandos.
type App struct {
	Deps
	printer  *message.Printer
	commands map[string]*command
}

// New construye el CLI.
func New(d Deps) *App {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	a := &App{Deps: d, printer: message.NewPrinter(language.Spanish)}
	a.commands = map[string]*command{}
	for _, c := range a.commandTable() {
		a.commands[c.name] = c
	}
	return a
}

// command comando del CLI. requires vacío = sin permiso; needsUser exige sesión.
type command struct {
	name      string
	usage     string
	needsUser bool
	requires  permission.Requirement
	run       func(ctx context.Context, user *entity.User, args []string) error
}

// errUsage argumentos inválidos (exit 2).
var errUsage = errors.New("uso incorrecto")

// Run ejecuta args (sin el nombre del binario) y devuelve el código de salida.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd, rest := a.resolve(args)
	if cmd == nil {
		a.usage()
		return ExitUsage
	}
	a.Navigator.SetView(cmd.name)

	var user *entity.User
	if cmd.needsUser {
		user = a.Auth.CurrentUser(ctx)
		if decision := permission.Check(user, cmd.requires); user == nil || !decision.Allowed {
			a.denied(user, decision)
			return ExitDenied
		}
	}

	err := cmd.run(ctx, user, rest)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintf(a.Err, "uso: shopcrm %s\n", cmd.usage)
		return ExitUsage
	default:
		a.printError(err)
		return ExitError
	}
}

// resolve busca primero "grupo sub" y luego "comando".
func (a *App) resolve(args []string) (*command, []string) {
	if len(args) == 0 {
		return nil, nil
	}
	if len(args) > 1 {
		if c, ok := a.commands[args[0]+" "+args[1]]; ok {
			return c, args[2:]
		}
	}
	if c, ok := a.commands[args[0]]; ok {
		return c, args[1:]
	}
	return nil, nil
}

func (a *App) denied(user *entity.User, d permission.Decision) {
	if user == nil {
		fmt.Fprintf(a.Out, "%s: inicie sesión primero\n", MsgAccessDenied)
		return
	}
	missing := make([]string, 0, len(d.Missing))
	for _, p := range d.Missing {
		missing = append(missing, string(p))
	}
	fmt.Fprintf(a.Out, "%s: el rol %q no tiene %s\n", MsgAccessDenied, user.Role, strings.Join(missing, " | "))
}

func (a *App) printError(err error) {
	if fields := validation.Fields(err); fields != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(a.Err, "datos inválidos:")
		for _, k := range keys {
			fmt.Fprintf(a.Err, "  - %s\n", fields[k])
		}
		return
	}
	a.Log.Debug().Err(err).Msg("cli: comando fallido")
	fmt.Fprintf(a.Err, "error: %v\n", err)
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for n := range a.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(a.Err, "uso: shopcrm <comando> [flags]")
	fmt.Fprintln(a.Err, "comandos:")
	for _, n := range names {
		fmt.Fprintf(a.Err, "  %s\n", a.commands[n].usage)
	}
}

// newFlags FlagSet que reporta errores por a.Err sin terminar el proceso.
func (a *App) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Err)
	return fs
}
