// Command staff provisions a municipal account: a staff member, a
// supervisor or an admin. Citizens register through the API instead.
// Roles are fixed at creation, so this is also the only way to obtain a
// non-citizen account.
//
// Usage:
//
//	staff --role=supervisor --name="Meera Iyer" --email=meera@city.gov --password=... \
//	      --department=water --ward=12
//	staff --role=staff --name="Ravi K" --phone=+919800000002 --password=... --reports-to=<supervisor id>
//
// Exit codes: 0 = created, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/staffprofile"
	userrepo "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/civicdesk-backend/internal/app"
	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/service/user"
)

func main() {
	var (
		role       = flag.String("role", "staff", "staff, supervisor or admin")
		name       = flag.String("name", "", "display name")
		phone      = flag.String("phone", "", "phone number")
		email      = flag.String("email", "", "email address")
		password   = flag.String("password", "", "initial password")
		department = flag.String("department", "", "department (staff and supervisors)")
		ward       = flag.String("ward", "", "ward (staff and supervisors)")
		reportsTo  = flag.String("reports-to", "", "user id of the supervisor this account reports to")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := user.NewService(
		logger,
		userrepo.New(pool),
		staffprofile.New(pool),
		postgres.NewTxManager(pool),
		cfg.Auth.PasswordHashCost,
	)

	profile, err := svc.Provision(ctx, user.ProvisionInput{
		Role:       domain.UserRole(*role),
		Name:       *name,
		Phone:      optional(*phone),
		Email:      optional(*email),
		Password:   *password,
		Department: optional(*department),
		Ward:       optional(*ward),
		ReportsTo:  optional(*reportsTo),
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
		}
		logger.Error("provision account", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	fmt.Printf("Created %s %q with id %s\n", profile.User.Role, profile.User.Name, profile.User.ID)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
