// Command client is a small CLI over the REST API, used for smoke-testing a
// running cost manager server.
//
// Usage:
//
//	client -a localhost:8080 about
//	client -a localhost:8080 users
//	client -a localhost:8080 user 123123
//	client -a localhost:8080 add-user 123123 Mosh Israeli
//	client -a localhost:8080 add-cost 123123 food 85.5 "milk 9"
//	client -a localhost:8080 report 123123 2024 1
//	client -a localhost:8080 logs
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"costmanager/internal/adapter"
	"costmanager/internal/logger"
	"costmanager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	address := flag.String("a", "localhost:8080", "server address")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("cost-client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{
		BaseURL:        *address,
		RequestTimeout: *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := runCommand(ctx, serverAdapter, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}

	printJSON(result)
}

func runCommand(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command given; want one of: about, users, user, add-user, add-cost, report, logs")
	}

	switch cmd := args[0]; cmd {
	case "about":
		return a.About(ctx)

	case "users":
		return a.ListUsers(ctx)

	case "user":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: user <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", args[1])
		}
		return a.GetUser(ctx, id)

	case "add-user":
		if len(args) != 4 {
			return nil, fmt.Errorf("usage: add-user <id> <first name> <last name>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", args[1])
		}
		return a.AddUser(ctx, models.User{ID: id, FirstName: args[2], LastName: args[3]})

	case "add-cost":
		if len(args) != 5 {
			return nil, fmt.Errorf("usage: add-cost <user id> <category> <sum> <description>")
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", args[1])
		}
		sum, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sum %q", args[3])
		}
		return a.AddCost(ctx, models.Cost{
			UserID:      userID,
			Category:    args[2],
			Sum:         sum,
			Description: args[4],
		})

	case "report":
		if len(args) != 4 {
			return nil, fmt.Errorf("usage: report <user id> <year> <month>")
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", args[1])
		}
		year, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", args[2])
		}
		month, err := strconv.Atoi(args[3])
		if err != nil {
			return nil, fmt.Errorf("invalid month %q", args[3])
		}
		return a.GetReport(ctx, userID, year, month)

	case "logs":
		return a.Logs(ctx, models.LogFilter{})

	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
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
