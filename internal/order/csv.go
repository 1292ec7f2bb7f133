package order

import (
	"fmt"
	"strings"

	"velora_back_end/internal/models"
)

// ExportFilename est le nom du fichier proposé au téléchargement.
const ExportFilename = "orders_export.csv"

var csvHeader = []string{
	"Order ID", "Customer", "Date", "Total", "Status",
	"Email", "Phone", "Address", "City", "State", "Zip Code",
}

// ExportCSV produit l'export des commandes : en-tête fixe puis une
// ligne par commande, champs joints par des virgules. Les champs
// libres ne sont pas échappés ni cités — une adresse contenant une
// virgule décale les colonnes (format hérité, conservé tel quel).
func ExportCSV(orders []models.Order) string {
	rows := make([]string, 0, len(orders)+1)
	rows = append(rows, strings.Join(csvHeader, ","))

	for _, ord := range orders {
		rows = append(rows, strings.Join([]string{
			ord.ID,
			ord.Shipping.Name,
			ord.OrderDate.Format("1/2/2006"),
			fmt.Sprintf("%.2f", ord.TotalAmount),
			string(ord.Status),
			ord.Shipping.Email,
			ord.Shipping.Phone,
			ord.Shipping.Address,
			ord.Shipping.City,
			ord.Shipping.State,
			ord.Shipping.ZipCode,
		}, ","))
	}

	return strings.Join(rows, "\n")
}
