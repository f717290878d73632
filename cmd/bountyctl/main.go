package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/pkg/storage"
)

var (
	app = kingpin.New("bountyctl", "Command line client for the bounty board JSON-RPC endpoint")

	serverURL = app.Flag("server", "Base URL of the bounty board server").Envar("BOUNTYBOARD_SERVER").Default("http://localhost:3100").String()
	timeout   = app.Flag("timeout", "Request timeout").Default("10s").Duration()
	jsonOut   = app.Flag("json", "Print raw JSON results instead of tables").Bool()

	infoCmd = app.Command("info", "Show the endpoint's discovery document")

	// Bounty commands
	bountiesCmd = app.Command("bounties", "Bounty commands")

	bountiesListCmd    = bountiesCmd.Command("list", "List bounties")
	bountiesListStatus = bountiesListCmd.Flag("status", "Filter by status").Enum("open", "claimed", "in_progress", "verification", "completed", "expired")
	bountiesListLimit  = bountiesListCmd.Flag("limit", "Maximum number of bounties (0 for all)").Default("0").Int()
	bountiesListOffset = bountiesListCmd.Flag("offset", "Number of bounties to skip").Default("0").Int()

	bountiesGetCmd = bountiesCmd.Command("get", "Show a single bounty")
	bountiesGetID  = bountiesGetCmd.Arg("id", "Bounty ID").Required().String()

	// Worker commands
	workersCmd = app.Command("workers", "Worker commands")

	workersAvailableCmd    = workersCmd.Command("available", "List available workers")
	workersAvailableSector = workersAvailableCmd.Flag("sector", "Filter by sector").String()

	// Raw call
	callCmd    = app.Command("call", "Invoke a JSON-RPC method and print the raw result")
	callMethod = callCmd.Arg("method", "Method name").Required().String()
	callParams = callCmd.Flag("params", "Params as a JSON object").String()

	// Fixture commands
	fixtureCmd = app.Command("fixture", "Fixture data commands")

	fixtureExportCmd      = fixtureCmd.Command("export", "Write the built-in fixture as YAML documents")
	fixtureExportDir      = fixtureExportCmd.Flag("dir", "Target directory").String()
	fixtureExportS3Bucket = fixtureExportCmd.Flag("s3-bucket", "Target S3 bucket").String()
	fixtureExportS3Prefix = fixtureExportCmd.Flag("s3-prefix", "Target S3 key prefix").Default("bountyboard/").String()
	fixtureExportS3Region = fixtureExportCmd.Flag("s3-region", "Target S3 region").Default("ap-northeast-1").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, command, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && len(rpcErr.Data) > 0 {
			fmt.Fprintf(os.Stderr, "%s\n", rpcErr.Data)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, out io.Writer) error {
	client := NewClient(*serverURL, *timeout)
	now := time.Now()

	switch command {
	case infoCmd.FullCommand():
		doc, err := client.Discover(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case bountiesListCmd.FullCommand():
		res, err := client.ListBounties(ctx, *bountiesListStatus, *bountiesListLimit, *bountiesListOffset)
		if err != nil {
			return err
		}
		if *jsonOut {
			return encodeJSON(out, res)
		}
		return printBounties(out, res.Bounties, res.Total, now)

	case bountiesGetCmd.FullCommand():
		b, err := client.GetBounty(ctx, *bountiesGetID)
		if err != nil {
			return err
		}
		if *jsonOut {
			return encodeJSON(out, b)
		}
		return printBounty(out, b, now)

	case workersAvailableCmd.FullCommand():
		res, err := client.AvailableWorkers(ctx, *workersAvailableSector)
		if err != nil {
			return err
		}
		if *jsonOut {
			return encodeJSON(out, res)
		}
		return printWorkers(out, res.Workers, res.Total)

	case callCmd.FullCommand():
		var params any
		if *callParams != "" {
			raw := json.RawMessage(*callParams)
			if !json.Valid(raw) {
				return fmt.Errorf("--params is not valid JSON")
			}
			params = raw
		}
		result, err := client.Call(ctx, *callMethod, params)
		if err != nil {
			return err
		}
		return printJSON(out, result)

	case fixtureExportCmd.FullCommand():
		return exportFixture(ctx, out)
	}
	return fmt.Errorf("unknown command %q", command)
}

func exportFixture(ctx context.Context, out io.Writer) error {
	var (
		dst    storage.Storage
		target string
		err    error
	)
	switch {
	case *fixtureExportDir != "" && *fixtureExportS3Bucket != "":
		return fmt.Errorf("--dir and --s3-bucket are mutually exclusive")
	case *fixtureExportDir != "":
		dst, err = storage.NewLocalStorage(*fixtureExportDir)
		target = *fixtureExportDir
	case *fixtureExportS3Bucket != "":
		dst, err = storage.NewS3Storage(ctx, *fixtureExportS3Bucket, *fixtureExportS3Prefix, *fixtureExportS3Region)
		target = "s3://" + *fixtureExportS3Bucket + "/" + *fixtureExportS3Prefix
	default:
		return fmt.Errorf("one of --dir or --s3-bucket is required")
	}
	if err != nil {
		return fmt.Errorf("failed to open export target: %w", err)
	}

	st, err := fixture.Default(ctx)
	if err != nil {
		return err
	}
	if err := fixture.Export(ctx, st, dst, ""); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "exported %d agents, %d workers, %d bounties, %d claims to %s\n",
		len(st.Agents()), len(st.Workers()), len(st.Bounties()), len(st.Claims()), target)
	return err
}

func printJSON(out io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}

func encodeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
