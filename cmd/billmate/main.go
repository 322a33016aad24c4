// Command billmate is a small administrative CLI over the BillMate SDK:
// sign in, inspect accounts, list entities/users/invitations, invite
// users. It exists mostly to exercise the SDK end to end.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	billmate "github.com/billmate/billmate-go"
	"github.com/billmate/billmate-go/models"
	"github.com/billmate/billmate-go/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "billmate:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	endpoint := flag.String("endpoint", getenv("BILLMATE_ENDPOINT", ""), "API endpoint, e.g. https://billmate.example.com")
	account := flag.String("account", getenv("BILLMATE_ACCOUNT", ""), "account id for account-scoped commands")
	verbose := flag.Bool("v", false, "log every request")
	flag.Parse()

	if *endpoint == "" {
		return fmt.Errorf("endpoint is required (flag -endpoint or BILLMATE_ENDPOINT)")
	}
	if flag.NArg() == 0 {
		return usage()
	}

	logger := zap.NewNop().Sugar()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()
		logger = l.Sugar()
	}

	storage, err := session.NewFileStorage(stateDir())
	if err != nil {
		return err
	}

	svc, err := billmate.Open(*endpoint,
		billmate.WithStorage(storage),
		billmate.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := flag.Args()
	switch args[0] {
	case "signin":
		return runSignIn(ctx, svc, args[1:])
	case "signout":
		return svc.SignOut(ctx)
	case "me":
		return printJSON(svc.Me(ctx))
	case "account":
		return printJSON(svc.Account(ctx, requireAccount(*account)))
	case "entities":
		return printJSON(svc.AccountEntities(ctx, requireAccount(*account), models.EntityFilter{Search: strings.Join(args[1:], " ")}))
	case "users":
		return printJSON(svc.AccountUsers(ctx, requireAccount(*account), models.UserFilter{Search: strings.Join(args[1:], " ")}))
	case "roles":
		return printJSON(svc.AccountRoles(ctx, requireAccount(*account), models.RoleFilter{}))
	case "invitations":
		return printJSON(svc.Invitations(ctx))
	case "invite":
		return runInvite(ctx, svc, args[1:])
	default:
		return usage()
	}
}

func runSignIn(ctx context.Context, svc *billmate.Service, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: billmate signin <email> <password>")
	}
	identity, err := svc.SignIn(ctx, models.SignInRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", identity.DisplayName())
	return nil
}

func runInvite(ctx context.Context, svc *billmate.Service, args []string) error {
	fs := flag.NewFlagSet("invite", flag.ContinueOnError)
	email := fs.String("email", "", "invitee email")
	entityIDs := fs.String("entities", "", "comma-separated entity ids")
	roleIDs := fs.String("roles", "", "comma-separated role ids")
	direct := fs.Bool("direct", false, "link the user directly to the account")
	if err := fs.Parse(args); err != nil {
		return err
	}

	invitation, err := svc.InviteUser(ctx, models.InvitationCreate{
		Email:            *email,
		EntityIDs:        splitList(*entityIDs),
		RoleIDs:          splitList(*roleIDs),
		IsDirectlyLinked: *direct,
	})
	if err != nil {
		return err
	}
	fmt.Printf("invited %s (%s)\n", invitation.Email, invitation.Status)
	return nil
}

func printJSON(v any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireAccount(id string) string {
	if id == "" {
		fmt.Fprintln(os.Stderr, "billmate: account id is required (flag -account or BILLMATE_ACCOUNT)")
		os.Exit(1)
	}
	return id
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func stateDir() string {
	if dir := os.Getenv("BILLMATE_STATE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".billmate"
	}
	return filepath.Join(home, ".billmate")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() error {
	fmt.Fprint(os.Stderr, `usage: billmate [flags] <command>

commands:
  signin <email> <password>
  signout
  me
  account
  entities [search]
  users [search]
  roles
  invitations
  invite -email <email> [-entities id,id] [-roles id,id] [-direct]
`)
	return fmt.Errorf("unknown or missing command")
}
