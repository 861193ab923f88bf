package queue

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"waitline/sdk/dashboard"
)

var (
	serverURL string
	token     string
	email     string
	password  string
	class     string
)

// NewCommand returns the queue command group, a terminal dashboard
// built on the API client.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and operate a ticket queue",
		Long:  `Inspect and operate a ticket queue through the waitline API: show status, issue tickets, call and resolve the ticket being served.`,
	}

	cmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().StringVarP(&token, "token", "t", "", "Access token (overrides email/password login)")
	cmd.PersistentFlags().StringVar(&email, "email", "", "Account email for login")
	cmd.PersistentFlags().StringVar(&password, "password", "", "Account password for login")

	cmd.AddCommand(
		newStatusCommand(),
		newIssueCommand(),
		newNextCommand(),
		newCompleteCommand(),
		newNoShowCommand(),
		newResetCommand(),
	)

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the queue dashboard",
		RunE:  runStatus,
	}
}

func newIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a new ticket",
		RunE:  runIssue,
	}

	cmd.Flags().StringVarP(&class, "class", "c", "regular", "Service class (regular or priority)")

	return cmd
}

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Call the next waiting ticket",
		RunE:  runNext,
	}
}

func newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <ticket-id>",
		Short: "Mark a serving ticket completed",
		Args:  cobra.ExactArgs(1),
		RunE:  runComplete,
	}
}

func newNoShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "no-show <ticket-id>",
		Short: "Mark a serving ticket as a no-show",
		Args:  cobra.ExactArgs(1),
		RunE:  runNoShow,
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all of your tickets",
		RunE:  runReset,
	}
}

func newBoard(ctx context.Context) (*dashboard.Board, error) {
	var opts []dashboard.Option
	if token == "" {
		if envToken := os.Getenv("WAITLINE_TOKEN"); envToken != "" {
			token = envToken
		}
	}
	if token != "" {
		opts = append(opts, dashboard.WithToken(token))
	}

	client := dashboard.NewClient(serverURL, opts...)

	if token == "" {
		if email == "" || password == "" {
			return nil, fmt.Errorf("either --token or --email and --password are required")
		}
		if _, err := client.Login(ctx, email, password); err != nil {
			return nil, err
		}
	}

	board := dashboard.NewBoard(client)
	if err := board.Refresh(ctx); err != nil {
		return nil, err
	}
	return board, nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	board, err := newBoard(ctx)
	if err != nil {
		return err
	}

	printBoard(board)
	return nil
}

func runIssue(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	board, err := newBoard(ctx)
	if err != nil {
		return err
	}

	ticket, err := board.Issue(ctx, dashboard.IssueRequest{ServiceClass: class})
	if err != nil {
		return err
	}

	fmt.Printf("Issued ticket %s (%s), estimated wait %d minutes\n",
		ticket.Number, ticket.ServiceClass, ticket.EstimatedWaitMinutes)
	printBoard(board)
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	board, err := newBoard(ctx)
	if err != nil {
		return err
	}

	ticket, err := board.CallNext(ctx)
	if err != nil {
		return err
	}
	if ticket == nil {
		fmt.Println("No waiting tickets")
		return nil
	}

	fmt.Printf("Now serving ticket %s (id %d)\n", ticket.Number, ticket.ID)
	printBoard(board)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	return resolveTicket(args[0], "complete")
}

func runNoShow(cmd *cobra.Command, args []string) error {
	return resolveTicket(args[0], "no-show")
}

func resolveTicket(rawID, action string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid ticket id %q", rawID)
	}

	board, err := newBoard(ctx)
	if err != nil {
		return err
	}

	var ticket *dashboard.Ticket
	switch action {
	case "complete":
		ticket, err = board.Complete(ctx, uint(id))
	case "no-show":
		ticket, err = board.NoShow(ctx, uint(id))
	}
	if err != nil {
		return err
	}

	fmt.Printf("Ticket %s marked %s\n", ticket.Number, ticket.Status)
	printBoard(board)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	board, err := newBoard(ctx)
	if err != nil {
		return err
	}

	result, err := board.Reset(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Queue reset, %d tickets deleted\n", result.Deleted)
	return nil
}

func printBoard(board *dashboard.Board) {
	stats := board.Stats()

	fmt.Printf("\nQueue Status:\n")
	fmt.Printf("  Regular:  %d waiting, %d completed\n",
		stats[dashboard.ClassRegular].Waiting, stats[dashboard.ClassRegular].Completed)
	fmt.Printf("  Priority: %d waiting, %d completed\n",
		stats[dashboard.ClassPriority].Waiting, stats[dashboard.ClassPriority].Completed)
	fmt.Printf("  No-shows: %d\n", board.NoShowCount())
	fmt.Printf("  Average wait: %s\n", board.AverageWait())

	if serving := board.Serving(); serving != nil {
		fmt.Printf("  Now serving: %s (id %d)\n", serving.Number, serving.ID)
	}

	waiting := board.Waiting()
	if len(waiting) == 0 {
		fmt.Println("  Waiting: none")
		return
	}

	fmt.Println("  Waiting:")
	for i, t := range waiting {
		fmt.Printf("    %2d. %-6s %-8s issued %s, est. %d min\n",
			i+1, t.Number, t.ServiceClass, t.IssuedAt.Local().Format("15:04"), t.EstimatedWaitMinutes)
	}
}
