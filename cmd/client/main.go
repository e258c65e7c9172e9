// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/valyan/clinic-manager/internal/adapter"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: clinic-client <command> [flags]

commands:
  version                      print client and server build information
  login -u NAME -p PASSWORD    authenticate and print the issued token
  validate -token TOKEN        check whether a token is accepted
  logout -token TOKEN          revoke a token
  users -token TOKEN           list one page of users
  staff -token TOKEN           query the medical staff grid

The token defaults to $CLINIC_TOKEN.`

var errUnknownCommand = errors.New("unknown command")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.NewLogger("clinic-client", "warn")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	if err = run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.APIClient, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	token := fs.String("token", os.Getenv("CLINIC_TOKEN"), "bearer token")

	switch command {
	case "version":
		printBuildInfo()
		info, err := client.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(info)

	case "login":
		identifier := fs.String("u", "", "username or email")
		password := fs.String("p", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		result, err := client.Login(ctx, *identifier, *password)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "validate":
		if err := fs.Parse(args); err != nil {
			return err
		}
		valid, err := client.ValidateToken(ctx, *token)
		if err != nil {
			return err
		}
		return printJSON(models.TokenValidationResult{IsValid: valid})

	case "logout":
		if err := fs.Parse(args); err != nil {
			return err
		}
		client.SetToken(*token)
		if err := client.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "users":
		search := fs.String("search", "", "free-text search")
		page := fs.Int("page", 1, "page number")
		pageSize := fs.Int("page-size", 20, "page size")
		if err := fs.Parse(args); err != nil {
			return err
		}
		client.SetToken(*token)
		result, err := client.ListUsers(ctx,
			models.UserFilter{Search: *search},
			models.SearchQuery{Page: *page, PageSize: *pageSize},
		)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "staff":
		search := fs.String("search", "", "free-text search")
		department := fs.String("department", "", "department filter")
		groupBy := fs.String("group-by", "", "grid property to group by")
		page := fs.Int("page", 1, "page number")
		pageSize := fs.Int("page-size", 20, "page size")
		if err := fs.Parse(args); err != nil {
			return err
		}
		req := models.MedicalStaffGridRequest{
			MedicalStaffFilter: models.MedicalStaffFilter{Search: *search, Department: *department},
			SearchQuery:        models.SearchQuery{Page: *page, PageSize: *pageSize},
		}
		if *groupBy != "" {
			req.Groups = []models.GroupDescriptor{{Property: *groupBy}}
		}
		client.SetToken(*token)
		result, err := client.QueryMedicalStaff(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(result)
	}

	return fmt.Errorf("%w: %q", errUnknownCommand, command)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
