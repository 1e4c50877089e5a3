package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/coopware/grocery/internal/adapters/cli"
	"github.com/coopware/grocery/internal/adapters/config"
	"github.com/coopware/grocery/internal/adapters/file"
	"github.com/coopware/grocery/internal/adapters/memory"
	"github.com/coopware/grocery/internal/core/logger"
	"github.com/coopware/grocery/internal/core/service"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

func main() {
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	defer func() {
		if err := logger.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
		}
	}()

	// collections and snapshot store
	stock := memory.NewStockRepository()
	members := memory.NewMemberRepository()
	orders := memory.NewOrderRepository()
	transactions := memory.NewTransactionRepository()
	store := file.NewStore(cfg.Storage.DataFile)

	grocery := service.NewGrocery(stock, members, orders, transactions, store, cfg.Checkout.MaxLineItems)

	in := bufio.NewReader(os.Stdin)
	if promptYes(in, "Load saved data? (y/n): ") {
		if err := grocery.Load(ctx); err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
				fmt.Println("No saved data found, starting fresh")
			} else {
				logger.Fatal(ctx, "Failed to load saved data", err, map[string]any{
					"data_file": cfg.Storage.DataFile,
				})
			}
		}
	}

	menu := cli.NewMenu(grocery, in, os.Stdout)
	menu.Run(ctx)

	if promptYes(in, "Save before exiting? (y/n): ") {
		if err := grocery.Save(ctx); err != nil {
			logger.Error(ctx, "Failed to save on exit", err, nil)
		}
	}
}

func promptYes(in *bufio.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
