package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/coopware/grocery/internal/core/dto"
	"github.com/coopware/grocery/internal/core/service"
)

const (
	cmdExit = iota
	cmdAddMember
	cmdRemoveMember
	cmdAddProduct
	cmdCheckout
	cmdProcessShipment
	cmdChangePrice
	cmdFindProducts
	cmdFindMembers
	cmdPrintTransactions
	cmdListOrders
	cmdListMembers
	cmdListProducts
	cmdSave
	cmdHelp
)

// Menu is the numbered text interface over the facade. All input parsing and
// validation happens here; the facade only ever sees well-formed requests.
type Menu struct {
	grocery *service.Grocery
	in      *bufio.Reader
	out     io.Writer
}

func NewMenu(grocery *service.Grocery, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		grocery: grocery,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run prompts for commands until exit. On exit the caller decides whether to
// save; the menu offers it as an explicit command as well.
func (m *Menu) Run(ctx context.Context) {
	m.printHelp()
	for {
		choice, err := m.promptInt("Enter command")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(m.out, "Invalid entry. Enter %d for help\n", cmdHelp)
			continue
		}

		switch choice {
		case cmdExit:
			return
		case cmdAddMember:
			m.addMember(ctx)
		case cmdRemoveMember:
			m.removeMember(ctx)
		case cmdAddProduct:
			m.addProduct(ctx)
		case cmdCheckout:
			m.checkout(ctx)
		case cmdProcessShipment:
			m.processShipment(ctx)
		case cmdChangePrice:
			m.changePrice(ctx)
		case cmdFindProducts:
			m.findProducts(ctx)
		case cmdFindMembers:
			m.findMembers(ctx)
		case cmdPrintTransactions:
			m.printTransactions(ctx)
		case cmdListOrders:
			m.listOrders(ctx)
		case cmdListMembers:
			m.listMembers(ctx)
		case cmdListProducts:
			m.listProducts(ctx)
		case cmdSave:
			m.save(ctx)
		case cmdHelp:
			m.printHelp()
		default:
			fmt.Fprintf(m.out, "Invalid entry. Enter %d for help\n", cmdHelp)
		}
	}
}

func (m *Menu) printHelp() {
	fmt.Fprintf(m.out, ""+
		"%d) Exit\n"+
		"%d) Add a member\n"+
		"%d) Remove a member\n"+
		"%d) Add a product\n"+
		"%d) Check out a member's items\n"+
		"%d) Process a shipment\n"+
		"%d) Change a product's price\n"+
		"%d) Find products by name\n"+
		"%d) Find members by name\n"+
		"%d) Print a member's transactions\n"+
		"%d) List outstanding orders\n"+
		"%d) List all members\n"+
		"%d) List all products\n"+
		"%d) Save\n"+
		"%d) Help\n",
		cmdExit, cmdAddMember, cmdRemoveMember, cmdAddProduct, cmdCheckout,
		cmdProcessShipment, cmdChangePrice, cmdFindProducts, cmdFindMembers,
		cmdPrintTransactions, cmdListOrders, cmdListMembers, cmdListProducts,
		cmdSave, cmdHelp)
}

func (m *Menu) addMember(ctx context.Context) {
	name := m.promptString("Member name")
	address := m.promptString("Address")
	phone := m.promptString("Phone number")
	joined, err := m.promptDate("Join date (YYYY-MM-DD)")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid date")
		return
	}
	fee, err := m.promptAmount("Fee paid")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount")
		return
	}

	result := m.grocery.AddMember(ctx, &dto.AddMemberRequest{
		Name:     name,
		Address:  address,
		Phone:    phone,
		JoinedAt: joined,
		FeePaid:  fee,
	})
	if !result.Code.IsOK() {
		fmt.Fprintf(m.out, "Could not add member (%s)\n", result.Code)
		return
	}
	fmt.Fprintf(m.out, "Added member %s (%s)\n", result.Name, result.MemberID)
}

func (m *Menu) removeMember(ctx context.Context) {
	memberID := m.promptString("Member id")
	result := m.grocery.RemoveMember(ctx, memberID)
	if !result.Code.IsOK() {
		fmt.Fprintf(m.out, "No member with id %s\n", memberID)
		return
	}
	fmt.Fprintf(m.out, "Removed member %s (%s)\n", result.Name, result.MemberID)
}

func (m *Menu) addProduct(ctx context.Context) {
	name := m.promptString("Product name")
	productID := m.promptString("Product id")
	reorderLevel, err := m.promptInt("Reorder level")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity")
		return
	}
	initialStock, err := m.promptInt("Initial stock")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity")
		return
	}
	price, err := m.promptAmount("Price")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount")
		return
	}

	result := m.grocery.AddProduct(ctx, &dto.AddProductRequest{
		Name:         name,
		ProductID:    productID,
		ReorderLevel: reorderLevel,
		InitialStock: initialStock,
		Price:        price,
	})
	switch result.Code {
	case dto.CodeOK:
		fmt.Fprintf(m.out, "Added product %s; an initial order was placed\n", result.ProductID)
	case dto.CodeDuplicateID:
		fmt.Fprintf(m.out, "Product id %s is already in use\n", productID)
	default:
		fmt.Fprintf(m.out, "Could not add product (%s)\n", result.Code)
	}
}

func (m *Menu) checkout(ctx context.Context) {
	begin := m.grocery.BeginTransaction(ctx)
	if !begin.Code.IsOK() {
		fmt.Fprintf(m.out, "Could not begin transaction (%s)\n", begin.Code)
		return
	}

	for {
		productID := m.promptString("Product id (empty to finish)")
		if productID == "" {
			break
		}
		quantity, err := m.promptInt("Quantity")
		if err != nil || quantity <= 0 {
			fmt.Fprintln(m.out, "Invalid quantity")
			continue
		}

		item := m.grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: begin.TransactionID,
			ProductID:     productID,
			Quantity:      quantity,
		})
		if !item.Code.IsOK() {
			fmt.Fprintf(m.out, "Could not add item (%s)\n", item.Code)
			continue
		}
		fmt.Fprintf(m.out, "Line total %s, running total %s\n",
			formatCents(item.LineTotal), formatCents(item.RunningTotal))
	}

	memberID := m.promptString("Member id")
	result := m.grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
		TransactionID: begin.TransactionID,
		MemberID:      memberID,
	})
	if !result.Code.IsOK() {
		fmt.Fprintf(m.out, "Could not end transaction (%s)\n", result.Code)
		return
	}
	fmt.Fprintf(m.out, "Transaction %s total %s\n", result.TransactionID, formatCents(result.Total))
}

func (m *Menu) processShipment(ctx context.Context) {
	orderID := m.promptString("Order id")
	result := m.grocery.ProcessShipment(ctx, orderID)
	if !result.Code.IsOK() {
		fmt.Fprintf(m.out, "No outstanding order with id %s\n", orderID)
		return
	}
	fmt.Fprintf(m.out, "Shipment received: %s now has %d on hand\n", result.Name, result.StockOnHand)
}

func (m *Menu) changePrice(ctx context.Context) {
	productID := m.promptString("Product id")
	price, err := m.promptAmount("New price")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount")
		return
	}
	result := m.grocery.ChangePrice(ctx, &dto.ChangePriceRequest{ProductID: productID, Price: price})
	if !result.Code.IsOK() {
		fmt.Fprintf(m.out, "No product with id %s\n", productID)
		return
	}
	fmt.Fprintf(m.out, "%s now costs %s\n", result.Name, formatCents(result.Price))
}

func (m *Menu) findProducts(ctx context.Context) {
	prefix := m.promptString("Product name starts with")
	for product := range m.grocery.FindProductsByNamePrefix(ctx, prefix) {
		m.printProduct(product)
	}
}

func (m *Menu) findMembers(ctx context.Context) {
	prefix := m.promptString("Member name starts with")
	for member := range m.grocery.FindMembersByNamePrefix(ctx, prefix) {
		m.printMember(member)
	}
}

func (m *Menu) printTransactions(ctx context.Context) {
	memberID := m.promptString("Member id")
	start, err := m.promptDate("Start date (YYYY-MM-DD)")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid date")
		return
	}
	end, err := m.promptDate("End date (YYYY-MM-DD)")
	if err != nil {
		fmt.Fprintln(m.out, "Invalid date")
		return
	}
	// push the end of the range to the last instant of that day
	end = end.AddDate(0, 0, 1).Add(-1)

	for transaction := range m.grocery.GetMemberTransactions(ctx, &dto.TransactionReportRequest{
		MemberID: memberID,
		Start:    start,
		End:      end,
	}) {
		fmt.Fprintf(m.out, "%s on %s, total %s\n", transaction.TransactionID,
			transaction.Date.Format("2006-01-02"), formatCents(transaction.Total))
		for _, item := range transaction.Items {
			fmt.Fprintf(m.out, "  %s x%d = %s\n", item.ProductName, item.Quantity, formatCents(item.LineTotal))
		}
	}
}

func (m *Menu) listOrders(ctx context.Context) {
	for order := range m.grocery.ListOutstandingOrders(ctx) {
		fmt.Fprintf(m.out, "%s: %d x %s, placed %s\n", order.OrderID, order.Quantity,
			order.ProductName, order.PlacedAt.Format("2006-01-02"))
	}
}

func (m *Menu) listMembers(ctx context.Context) {
	for member := range m.grocery.ListMembers(ctx) {
		m.printMember(member)
	}
}

func (m *Menu) listProducts(ctx context.Context) {
	for product := range m.grocery.ListProducts(ctx) {
		m.printProduct(product)
	}
}

func (m *Menu) save(ctx context.Context) {
	if err := m.grocery.Save(ctx); err != nil {
		fmt.Fprintf(m.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Saved")
}

func (m *Menu) printProduct(product dto.ProductResult) {
	fmt.Fprintf(m.out, "%s (%s): %d on hand, reorder at %d, price %s\n",
		product.Name, product.ProductID, product.StockOnHand,
		product.ReorderLevel, formatCents(product.Price))
}

func (m *Menu) printMember(member dto.MemberResult) {
	fmt.Fprintf(m.out, "%s (%s), %s, joined %s\n",
		member.Name, member.MemberID, member.Address,
		member.JoinedAt.Format("2006-01-02"))
}
