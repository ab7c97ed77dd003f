// Package console is the interactive menu over the service layer. It
// is pure presentation: every business rule lives in the services it
// calls.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/service"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Console runs the interactive cost manager menu
type Console struct {
	costs    service.CostService
	invoices service.InvoiceService
	payments service.PaymentService
	reports  service.ReportService

	in  *bufio.Scanner
	out io.Writer
}

func New(
	costs service.CostService,
	invoices service.InvoiceService,
	payments service.PaymentService,
	reports service.ReportService,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		costs:    costs,
		invoices: invoices,
		payments: payments,
		reports:  reports,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops the main menu until the user exits or input ends
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n--- Cost Manager Menu ---")
		fmt.Fprintln(c.out, "1. Log a new cost entry")
		fmt.Fprintln(c.out, "2. Create a new invoice")
		fmt.Fprintln(c.out, "3. Edit an invoice")
		fmt.Fprintln(c.out, "4. Log a payment")
		fmt.Fprintln(c.out, "5. Show all invoices")
		fmt.Fprintln(c.out, "6. Show invoice by ID")
		fmt.Fprintln(c.out, "7. Show due reminders")
		fmt.Fprintln(c.out, "8. Generate a payment receipt (PDF)")
		fmt.Fprintln(c.out, "9. Generate reports")
		fmt.Fprintln(c.out, "10. Exit")

		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = c.logCost(ctx)
		case "2":
			err = c.createInvoice(ctx)
		case "3":
			err = c.editInvoice(ctx)
		case "4":
			err = c.logPayment(ctx)
		case "5":
			err = c.showAllInvoices(ctx)
		case "6":
			err = c.showInvoiceByID(ctx)
		case "7":
			err = c.showDueReminders(ctx)
		case "8":
			err = c.generateReceipt(ctx)
		case "9":
			err = c.reportMenu(ctx)
		case "10":
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}

		if err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", displayError(err))
		}
	}
}

func (c *Console) logCost(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Log New Cost ---")
	description, ok := c.prompt("Description: ")
	if !ok {
		return nil
	}
	amount, err := c.promptDecimal("Amount: ")
	if err != nil {
		return err
	}
	category, _ := c.prompt("Category: ")

	resp, err := c.costs.CreateCost(ctx, &dto.CreateCostRequest{
		Description: description,
		Amount:      amount,
		Category:    category,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Cost #%d logged successfully!\n", resp.ID)
	return nil
}

func (c *Console) createInvoice(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Create New Invoice ---")

	clientID, err := c.promptInt("Client ID: ")
	if err != nil {
		return err
	}
	clientName, _ := c.prompt("Client Name: ")
	clientEmail, _ := c.prompt("Client Email: ")
	region, _ := c.prompt("Region Code (e.g., SA, PS): ")

	kindChoice, _ := c.prompt("Discount Type (1-Fixed, 2-Percentage): ")
	kind := types.DiscountTypeFixed
	if kindChoice == "2" {
		kind = types.DiscountTypePercentage
	}
	discount, err := c.promptDecimal("Discount Amount: ")
	if err != nil {
		return err
	}
	dueInDays, err := c.promptInt("Due in how many days? ")
	if err != nil {
		return err
	}

	var items []dto.InvoiceItemRequest
	for {
		name, ok := c.prompt("Item Name (or 'done' to finish): ")
		if !ok || strings.EqualFold(name, "done") {
			break
		}
		unitPrice, err := c.promptDecimal("Unit Price: ")
		if err != nil {
			return err
		}
		quantity, err := c.promptInt("Quantity: ")
		if err != nil {
			return err
		}
		items = append(items, dto.InvoiceItemRequest{Name: name, UnitPrice: unitPrice, Quantity: quantity})
	}

	resp, err := c.invoices.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
		ClientID:     clientID,
		ClientName:   clientName,
		ClientEmail:  clientEmail,
		Region:       region,
		DiscountKind: kind,
		Discount:     discount,
		DueInDays:    dueInDays,
		Items:        items,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Invoice #%d created successfully!\n", resp.ID)
	fmt.Fprintf(c.out, "Grand Total: %s (Subtotal: %s, Tax: %s, Discount: %s)\n",
		money(resp.GrandTotal), money(resp.Subtotal), money(resp.Tax), resp.Discount)
	return nil
}

func (c *Console) editInvoice(ctx context.Context) error {
	id, err := c.promptInt("Invoice ID to edit: ")
	if err != nil {
		return err
	}

	current, err := c.invoices.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\n--- Edit Invoice ---")
	fmt.Fprintf(c.out, "Current Client: %s\n", current.ClientName)

	req := &dto.UpdateInvoiceRequest{}
	if name, ok := c.prompt("New Client Name (or enter to keep): "); ok && name != "" {
		req.ClientName = &name
	}
	fmt.Fprintf(c.out, "Current Due Date: %s\n", shortDate(current.DueDate))
	if raw, ok := c.prompt("Due in how many days? (or enter to keep): "); ok && raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return ierr.NewError("invalid number").
				WithHintf("%q is not a valid number of days", raw).
				Mark(ierr.ErrValidation)
		}
		req.DueInDays = &days
	}

	fmt.Fprintln(c.out, "\nCurrent Items:")
	for _, item := range current.Items {
		fmt.Fprintf(c.out, "%d x %s @ %s\n", item.Quantity, item.Name, money(item.UnitPrice))
	}

	if choice, _ := c.prompt("\n1. Replace items\n2. Continue\nSelect: "); choice == "1" {
		var items []dto.InvoiceItemRequest
		for {
			name, ok := c.prompt("Item Name (or 'done' to finish): ")
			if !ok || strings.EqualFold(name, "done") {
				break
			}
			unitPrice, err := c.promptDecimal("Unit Price: ")
			if err != nil {
				return err
			}
			quantity, err := c.promptInt("Quantity: ")
			if err != nil {
				return err
			}
			items = append(items, dto.InvoiceItemRequest{Name: name, UnitPrice: unitPrice, Quantity: quantity})
		}
		req.Items = items
	}

	if _, err := c.invoices.UpdateInvoice(ctx, id, req); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Invoice updated successfully!")
	return nil
}

func (c *Console) logPayment(ctx context.Context) error {
	id, err := c.promptInt("Invoice ID for payment: ")
	if err != nil {
		return err
	}

	inv, err := c.invoices.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\n--- Log Payment ---")
	fmt.Fprintf(c.out, "Invoice #%d Status: %s\n", inv.ID, inv.Status)
	fmt.Fprintf(c.out, "Amount Due: %s\n", money(inv.TotalDue))

	amount, err := c.promptDecimal("Payment Amount: ")
	if err != nil {
		return err
	}
	method, _ := c.prompt("Payment Method: ")

	if _, err := c.payments.RecordPayment(ctx, id, &dto.CreatePaymentRequest{
		Amount: amount,
		Method: method,
	}); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\nPayment logged successfully!")
	return c.showPaymentHistory(ctx, id)
}

func (c *Console) showPaymentHistory(ctx context.Context, invoiceID int) error {
	history, err := c.payments.GetPaymentHistory(ctx, invoiceID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Payment History for Invoice #%d\n", invoiceID)
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	for _, p := range history.Items {
		fmt.Fprintf(c.out, "[%s] %s via %s\n", p.PaidAt.Format("2006-01-02 15:04"), money(p.Amount), p.Method)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	fmt.Fprintf(c.out, "Total Paid: %s\n", money(history.TotalPaid))
	return nil
}

func (c *Console) showAllInvoices(ctx context.Context) error {
	resp, err := c.invoices.ListInvoices(ctx)
	if err != nil {
		return err
	}
	for _, inv := range resp.Items {
		c.printInvoice(inv)
	}
	return nil
}

func (c *Console) showInvoiceByID(ctx context.Context) error {
	id, err := c.promptInt("Enter Invoice ID: ")
	if err != nil {
		return err
	}
	inv, err := c.invoices.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	c.printInvoice(inv)
	return nil
}

func (c *Console) printInvoice(inv *dto.InvoiceResponse) {
	fmt.Fprintf(c.out, "\n--- Invoice #%d ---\n", inv.ID)
	fmt.Fprintf(c.out, "Client: %s (ID %d)\n", inv.ClientName, inv.ClientID)
	fmt.Fprintf(c.out, "Region: %s\n", inv.Region)
	fmt.Fprintf(c.out, "Status: %s\n", inv.Status)
	fmt.Fprintf(c.out, "Created: %s\n", shortDate(inv.CreatedAt))
	fmt.Fprintf(c.out, "Due: %s\n", shortDate(inv.DueDate))
	fmt.Fprintf(c.out, "Subtotal: %s\n", money(inv.Subtotal))
	fmt.Fprintf(c.out, "Tax (%s): %s\n", inv.Region, money(inv.Tax))
	fmt.Fprintf(c.out, "Discount: %s\n", inv.Discount)
	fmt.Fprintf(c.out, "Grand Total: %s\n", money(inv.GrandTotal))
	fmt.Fprintf(c.out, "Total Paid: %s\n", money(inv.TotalPaid))
	fmt.Fprintf(c.out, "Total Due: %s\n", money(inv.TotalDue))
	if len(inv.Payments) > 0 {
		fmt.Fprintln(c.out, "\nPayment History:")
		for _, p := range inv.Payments {
			fmt.Fprintf(c.out, "- %s: %s via %s\n", shortDate(p.PaidAt), money(p.Amount), p.Method)
		}
	}
}

func (c *Console) generateReceipt(ctx context.Context) error {
	id, err := c.promptInt("Payment ID for receipt: ")
	if err != nil {
		return err
	}

	data, filename, err := c.payments.GenerateReceipt(ctx, id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return ierr.WithError(err).
			WithHintf("Could not write receipt file %s", filename).
			Mark(ierr.ErrSystem)
	}

	fmt.Fprintf(c.out, "Receipt saved to %s\n", filename)
	return nil
}

func (c *Console) showDueReminders(ctx context.Context) error {
	reminders, err := c.invoices.GetDueReminders(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\n--- Due Reminders ---")
	if len(reminders) == 0 {
		fmt.Fprintln(c.out, "No invoices due soon.")
		return nil
	}
	for _, r := range reminders {
		fmt.Fprintf(c.out, "Invoice #%d for %s due on %s - Amount Due: %s (%s)\n",
			r.InvoiceID, r.ClientName, shortDate(r.DueDate), money(r.TotalDue), r.Status)
	}
	return nil
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptInt(label string) (int, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, io.EOF
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ierr.NewError("invalid number").
			WithHintf("%q is not a valid number", raw).
			Mark(ierr.ErrValidation)
	}
	return n, nil
}

func (c *Console) promptDecimal(label string) (decimal.Decimal, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, io.EOF
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ierr.NewError("invalid amount").
			WithHintf("%q is not a valid amount", raw).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

func displayError(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		for _, hint := range hints {
			if hint = strings.TrimSpace(hint); hint != "" {
				return hint
			}
		}
	}
	return err.Error()
}
