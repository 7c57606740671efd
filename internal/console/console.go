// Package console runs the interactive banking menu over a line-based
// reader and writer. All money handling is delegated to ledger.Ledger.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheikh-saqib/customer-ledger/internal/ledger"
	"github.com/sheikh-saqib/customer-ledger/internal/logger"
	"github.com/sheikh-saqib/customer-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const (
	choiceCreate = iota + 1
	choiceDeposit
	choiceWithdraw
	choiceBalance
	choiceList
	choiceExit
)

var menuOptions = []string{
	"1. Create Account",
	"2. Deposit Money",
	"3. Withdraw Money",
	"4. Check Balance",
	"5. View All Customers",
	"6. Exit",
}

type Options struct {
	// Currency is printed in front of every amount. Defaults to "$".
	Currency string
	// Color enables lipgloss styling of the output.
	Color bool
}

// Session owns the input reader for one run of the menu loop.
type Session struct {
	ledger   *ledger.Ledger
	in       *bufio.Reader
	out      io.Writer
	currency string
	style    styles

	werr error // first write error, checked once per loop iteration
}

func NewSession(l *ledger.Ledger, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	return &Session{
		ledger:   l,
		in:       bufio.NewReader(in),
		out:      out,
		currency: opts.Currency,
		style:    newStyles(opts.Color),
	}
}

// Run shows the menu until exit is chosen or input ends. Domain errors are
// reported to the operator and never returned; only I/O errors are.
func (s *Session) Run(ctx context.Context) error {
	log := logger.StdlibLogger(ctx)

	for {
		s.printMenu()

		choice, err := s.readChoice(ctx)
		if err != nil {
			return s.stop(ctx, err)
		}
		log.Debug("menu choice", "choice", choice)

		switch choice {
		case choiceCreate:
			err = s.createAccount(ctx)
		case choiceDeposit:
			err = s.depositMoney(ctx)
		case choiceWithdraw:
			err = s.withdrawMoney(ctx)
		case choiceBalance:
			err = s.checkBalance(ctx)
		case choiceList:
			err = s.viewAllCustomers()
		case choiceExit:
			s.println(s.style.header("👋 Thank you for using the banking system!"))
			return s.werr
		default:
			log.Debug("rejected menu choice", "choice", choice, "error", models.ErrInvalidChoice)
			s.println(s.style.failure("❌ Invalid choice. Please try again."))
		}

		if err != nil {
			return s.stop(ctx, err)
		}
		if s.werr != nil {
			return s.werr
		}
	}
}

// stop turns end of input into a clean exit.
func (s *Session) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		logger.StdlibLogger(ctx).Debug("input closed, leaving menu")
		return s.werr
	}
	return err
}

func (s *Session) printMenu() {
	s.println("")
	s.println(s.style.header("🏦 Simple Banking System Menu"))
	for _, opt := range menuOptions {
		s.println(opt)
	}
	s.print("👉 Enter your choice: ")
}

func (s *Session) createAccount(ctx context.Context) error {
	s.print("Enter Customer ID: ")
	id, err := s.next()
	if err != nil {
		return err
	}

	exists, err := s.ledger.CustomerExists(id)
	if err != nil {
		return err
	}
	if exists {
		s.println(s.style.failure("❌ Account already exists with this ID."))
		return nil
	}

	s.print("Enter Customer Name: ")
	name, err := s.next()
	if err != nil {
		return err
	}

	customer, err := s.ledger.CreateCustomer(ctx, id, name)
	switch {
	case errors.Is(err, models.ErrDuplicateID):
		s.println(s.style.failure("❌ Account already exists with this ID."))
		return nil
	case err != nil:
		return err
	}

	s.println(s.style.success("✅ Account created successfully for " + customer.Name))
	return nil
}

func (s *Session) depositMoney(ctx context.Context) error {
	customer, err := s.getCustomer()
	if err != nil || customer == nil {
		return err
	}

	s.print("Enter amount to deposit: ")
	amount, err := s.readAmount(ctx)
	if err != nil {
		return err
	}

	_, err = s.ledger.Deposit(ctx, customer.ID, amount)
	switch {
	case err == nil:
		s.println(s.style.success("✅ Deposited " + s.money(amount) + " successfully."))
	case errors.Is(err, models.ErrInvalidAmount):
		s.println(s.style.failure("❌ Deposit amount must be greater than 0."))
	default:
		return err
	}
	return nil
}

func (s *Session) withdrawMoney(ctx context.Context) error {
	customer, err := s.getCustomer()
	if err != nil || customer == nil {
		return err
	}

	s.print("Enter amount to withdraw: ")
	amount, err := s.readAmount(ctx)
	if err != nil {
		return err
	}

	_, err = s.ledger.Withdraw(ctx, customer.ID, amount)
	var insufficient *models.InsufficientFundsError
	switch {
	case err == nil:
		s.println(s.style.success("✅ Withdrew " + s.money(amount) + " successfully."))
	case errors.Is(err, models.ErrInvalidAmount):
		s.println(s.style.failure("❌ Withdrawal amount must be greater than 0."))
	case errors.As(err, &insufficient):
		s.println(s.style.failure("❌ Insufficient funds! Your balance is " + s.money(insufficient.Balance)))
	default:
		return err
	}
	return nil
}

func (s *Session) checkBalance(ctx context.Context) error {
	customer, err := s.getCustomer()
	if err != nil || customer == nil {
		return err
	}

	balance, err := s.ledger.GetBalance(customer.ID)
	if err != nil {
		return err
	}
	s.println("💰 Balance: " + s.money(balance))
	return nil
}

func (s *Session) viewAllCustomers() error {
	customers, err := s.ledger.ListCustomers()
	if err != nil {
		return err
	}

	if len(customers) == 0 {
		s.println(s.style.failure("❌ No customers found."))
		return nil
	}

	s.println("")
	s.println(s.style.header("📋 List of Customers:"))
	for _, c := range customers {
		s.println(fmt.Sprintf("Customer ID: %s, Name: %s, Balance: %s", c.ID, c.Name, s.money(c.Account.Balance())))
	}
	return nil
}

// getCustomer prompts for an id and resolves it. A miss is reported to the
// operator and yields a nil customer with a nil error.
func (s *Session) getCustomer() (*models.Customer, error) {
	s.print("Enter Customer ID: ")
	id, err := s.next()
	if err != nil {
		return nil, err
	}

	customer, err := s.ledger.GetCustomer(id)
	if errors.Is(err, models.ErrNotFound) {
		s.println(s.style.failure("❌ No customer found with ID " + id))
		return nil, nil
	}
	return customer, err
}

func (s *Session) readChoice(ctx context.Context) (int, error) {
	for {
		token, err := s.next()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(token)
		if err == nil {
			return choice, nil
		}
		logger.StdlibLogger(ctx).Trace("discarding non-numeric choice", "input", token)
		s.print(s.style.failure("❌ Invalid input. Please enter a number: "))
	}
}

func (s *Session) readAmount(ctx context.Context) (decimal.Decimal, error) {
	for {
		token, err := s.next()
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(token)
		if err == nil {
			return amount, nil
		}
		logger.StdlibLogger(ctx).Trace("discarding non-numeric amount", "input", token)
		s.print(s.style.failure("❌ Invalid input. Please enter an amount: "))
	}
}

// next returns the next non-blank line, trimmed. The whole line is consumed,
// however long, so a rejected value never leaks into the following prompt.
func (s *Session) next() (string, error) {
	for {
		line, err := s.in.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			// A final line without a newline still counts; EOF surfaces on the next call.
			return trimmed, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// money prints two decimals unless that would hide sub-cent digits.
func (s *Session) money(d decimal.Decimal) string {
	if !d.Equal(d.Round(2)) {
		return s.currency + d.String()
	}
	return s.currency + d.StringFixed(2)
}

func (s *Session) print(text string) {
	if s.werr != nil {
		return
	}
	_, s.werr = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	s.print(text + "\n")
}
