package document

import (
	"fmt"
	"time"

	"github.com/coopware/grocery/internal/core/domain"
)

// Wire documents for the snapshot file. Entity references are flattened to
// ids here; ToDomain re-links them so that orders and line items alias the
// product instances in the stock slice, and members alias the transaction
// instances in the transaction slice.

type ProductDocument struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StockOnHand  int    `json:"stock_on_hand"`
	ReorderLevel int    `json:"reorder_level"`
	Price        int    `json:"price"`
}

type MemberDocument struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	JoinedAt       time.Time `json:"joined_at"`
	FeePaid        int       `json:"fee_paid"`
	TransactionIDs []string  `json:"transaction_ids,omitempty"`
}

type OrderDocument struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	PlacedAt  time.Time `json:"placed_at"`
}

type LineItemDocument struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

type TransactionDocument struct {
	ID     string             `json:"id"`
	Date   time.Time          `json:"date"`
	Status string             `json:"status"`
	Items  []LineItemDocument `json:"items,omitempty"`
}

type SnapshotDocument struct {
	Products     []ProductDocument     `json:"products"`
	Members      []MemberDocument      `json:"members"`
	Orders       []OrderDocument       `json:"orders"`
	Transactions []TransactionDocument `json:"transactions"`

	MemberSeq      int `json:"member_seq"`
	OrderSeq       int `json:"order_seq"`
	TransactionSeq int `json:"transaction_seq"`
}

func ToSnapshotDocument(snapshot *domain.Snapshot) *SnapshotDocument {
	doc := &SnapshotDocument{
		Products:       make([]ProductDocument, len(snapshot.Products)),
		Members:        make([]MemberDocument, len(snapshot.Members)),
		Orders:         make([]OrderDocument, len(snapshot.Orders)),
		Transactions:   make([]TransactionDocument, len(snapshot.Transactions)),
		MemberSeq:      snapshot.MemberSeq,
		OrderSeq:       snapshot.OrderSeq,
		TransactionSeq: snapshot.TransactionSeq,
	}

	for i, product := range snapshot.Products {
		doc.Products[i] = ProductDocument{
			ID:           product.ID,
			Name:         product.Name,
			StockOnHand:  product.StockOnHand,
			ReorderLevel: product.ReorderLevel,
			Price:        product.Price.Cents(),
		}
	}

	for i, member := range snapshot.Members {
		memberDoc := MemberDocument{
			ID:       member.ID,
			Name:     member.Name,
			Address:  member.Address,
			Phone:    member.Phone,
			JoinedAt: member.JoinedAt,
			FeePaid:  member.FeePaid.Cents(),
		}
		for _, transaction := range member.Transactions {
			memberDoc.TransactionIDs = append(memberDoc.TransactionIDs, transaction.ID)
		}
		doc.Members[i] = memberDoc
	}

	for i, order := range snapshot.Orders {
		doc.Orders[i] = OrderDocument{
			ID:        order.ID,
			ProductID: order.Product.ID,
			Quantity:  order.Quantity,
			PlacedAt:  order.PlacedAt,
		}
	}

	for i, transaction := range snapshot.Transactions {
		transactionDoc := TransactionDocument{
			ID:     transaction.ID,
			Date:   transaction.Date,
			Status: string(transaction.Status),
		}
		for _, item := range transaction.Items {
			transactionDoc.Items = append(transactionDoc.Items, LineItemDocument{
				ProductID: item.Product.ID,
				Quantity:  item.Quantity,
				LineTotal: item.LineTotal.Cents(),
			})
		}
		doc.Transactions[i] = transactionDoc
	}

	return doc
}

func (doc *SnapshotDocument) ToDomain() (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{
		Products:       make([]*domain.Product, len(doc.Products)),
		Members:        make([]*domain.Member, len(doc.Members)),
		Orders:         make([]*domain.Order, len(doc.Orders)),
		Transactions:   make([]*domain.Transaction, len(doc.Transactions)),
		MemberSeq:      doc.MemberSeq,
		OrderSeq:       doc.OrderSeq,
		TransactionSeq: doc.TransactionSeq,
	}

	productsByID := make(map[string]*domain.Product, len(doc.Products))
	for i, productDoc := range doc.Products {
		product := &domain.Product{
			ID:           productDoc.ID,
			Name:         productDoc.Name,
			StockOnHand:  productDoc.StockOnHand,
			ReorderLevel: productDoc.ReorderLevel,
			Price:        domain.NewAmountFromCents(productDoc.Price),
		}
		snapshot.Products[i] = product
		productsByID[product.ID] = product
	}

	transactionsByID := make(map[string]*domain.Transaction, len(doc.Transactions))
	for i, transactionDoc := range doc.Transactions {
		transaction := &domain.Transaction{
			ID:     transactionDoc.ID,
			Date:   transactionDoc.Date,
			Status: domain.TransactionStatus(transactionDoc.Status),
		}
		for _, itemDoc := range transactionDoc.Items {
			product, ok := productsByID[itemDoc.ProductID]
			if !ok {
				return nil, fmt.Errorf("transaction %s references unknown product %s", transactionDoc.ID, itemDoc.ProductID)
			}
			transaction.Items = append(transaction.Items, domain.LineItem{
				Product:   product,
				Quantity:  itemDoc.Quantity,
				LineTotal: domain.NewAmountFromCents(itemDoc.LineTotal),
			})
		}
		snapshot.Transactions[i] = transaction
		transactionsByID[transaction.ID] = transaction
	}

	for i, memberDoc := range doc.Members {
		member := &domain.Member{
			ID:       memberDoc.ID,
			Name:     memberDoc.Name,
			Address:  memberDoc.Address,
			Phone:    memberDoc.Phone,
			JoinedAt: memberDoc.JoinedAt,
			FeePaid:  domain.NewAmountFromCents(memberDoc.FeePaid),
		}
		for _, transactionID := range memberDoc.TransactionIDs {
			transaction, ok := transactionsByID[transactionID]
			if !ok {
				return nil, fmt.Errorf("member %s references unknown transaction %s", memberDoc.ID, transactionID)
			}
			member.Transactions = append(member.Transactions, transaction)
		}
		snapshot.Members[i] = member
	}

	for i, orderDoc := range doc.Orders {
		product, ok := productsByID[orderDoc.ProductID]
		if !ok {
			return nil, fmt.Errorf("order %s references unknown product %s", orderDoc.ID, orderDoc.ProductID)
		}
		snapshot.Orders[i] = &domain.Order{
			ID:       orderDoc.ID,
			Product:  product,
			Quantity: orderDoc.Quantity,
			PlacedAt: orderDoc.PlacedAt,
		}
	}

	return snapshot, nil
}
