package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"velora_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// EmailEnabled indique si l'envoi SMTP est configuré. Sans SMTP_HOST,
// aucun email ne part et les commandes fonctionnent normalement.
func EmailEnabled() bool {
	return os.Getenv("SMTP_HOST") != ""
}

func sendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@velora.shop"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// SendOrderConfirmationEmail envoie la confirmation de commande au client
func SendOrderConfirmationEmail(order models.Order) error {
	return sendEmail(order.Shipping.Email,
		"✅ Confirmation de votre commande Velora",
		generateOrderConfirmationHTML(order))
}

// SendOrderStatusEmail notifie le client d'un changement de statut
func SendOrderStatusEmail(order models.Order) error {
	return sendEmail(order.Shipping.Email,
		statusEmailSubject(order.Status),
		generateStatusEmailHTML(order))
}

func statusEmailSubject(status models.OrderStatus) string {
	switch status {
	case models.StatusProcessing:
		return "🛠️ Votre commande est en préparation - Velora"
	case models.StatusShipped:
		return "📦 Votre commande a été expédiée - Velora"
	case models.StatusDelivered:
		return "🎉 Votre commande a été livrée - Velora"
	case models.StatusCancelled:
		return "❌ Commande annulée - Velora"
	default:
		return "📋 Mise à jour de votre commande - Velora"
	}
}

func generateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>$%.2f</td>
				<td>$%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Confirmation de commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande #%s a été enregistrée avec succès.</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left;">Produit</th>
					<th style="padding: 10px; text-align: left;">Quantité</th>
					<th style="padding: 10px; text-align: left;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">$%.2f</td>
				</tr>
			</tfoot>
		</table>
		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe Velora</strong>
		</p>
	</div>
</body>
</html>`, order.Shipping.Name, order.ID, itemsHTML, order.TotalAmount)
}

func generateStatusEmailHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Mise à jour de commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Mise à jour de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Le statut de votre commande #%s est maintenant : <strong>%s</strong></p>
		<p><strong>Montant total :</strong> $%.2f</p>
		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe Velora</strong>
		</p>
	</div>
</body>
</html>`, order.Shipping.Name, order.ID, order.Status, order.TotalAmount)
}
