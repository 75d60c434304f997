// Package i18n holds the booking UI dictionaries. It is key lookup only.
package i18n

const DefaultLanguage = "en"

var dictionaries = map[string]map[string]string{
	"en": {
		"title":              "Check Tour Availability",
		"selectDateLabel":    "Select Date",
		"loading":            "Loading available adventures...",
		"errorGeneric":       "Sorry, we couldn't load tour availability. Please try again later.",
		"noTours":            "No tours available for this date. Please try another day!",
		"duration":           "Duration",
		"spotsLeft":          "spots left",
		"soldOut":            "Sold out",
		"bookBtn":            "Book Now",
		"alertMissing":       "Please provide name and email.",
		"alertEmail":         "Invalid email address.",
		"alertPartySize":     "Please choose a valid number of people.",
		"alertFailed":        "Booking failed",
		"alertError":         "Network error or unexpected issue. Please try again.",
		"bookTitle":          "Book",
		"labelDate":          "Date",
		"labelPrice":         "Price",
		"labelName":          "Your Name",
		"labelEmail":         "Your Email",
		"labelPeople":        "People",
		"labelTotal":         "Total",
		"labelNotes":         "Special Notes (Optional)",
		"btnSubmitting":      "Booking...",
		"btnConfirm":         "Confirm Booking",
		"btnCancel":          "Cancel",
		"paymentTitle":       "Booking Reserved!",
		"paymentInstruction": "Scan the QR code below to pay via Pix.",
		"paymentWaiting":     "Waiting for payment confirmation...",
		"labelPixString":     "Pix Copy & Paste Code",
		"btnClose":           "Close",
		"successTitle":       "Payment Confirmed!",
		"successMessage":     "Your adventure is booked. We have sent a confirmation email to",
		"btnDone":            "Done",
		"tour.sunrise":       "Daybreak Dolphin Bay Encounter",
		"tour.sunset":        "Sunset Lagoon Paddle",
		"tour.full_day":      "Coastal Exploration",
	},
	"pt": {
		"title":              "Verificar Disponibilidade",
		"selectDateLabel":    "Selecione a Data",
		"loading":            "Carregando aventuras disponíveis...",
		"errorGeneric":       "Desculpe, não foi possível carregar a disponibilidade. Tente novamente mais tarde.",
		"noTours":            "Nenhum passeio disponível nesta data. Tente outro dia!",
		"duration":           "Duração",
		"spotsLeft":          "vagas restantes",
		"soldOut":            "Esgotado",
		"bookBtn":            "Reservar",
		"alertMissing":       "Por favor, informe nome e e-mail.",
		"alertEmail":         "Endereço de e-mail inválido.",
		"alertPartySize":     "Escolha um número válido de pessoas.",
		"alertFailed":        "Falha na reserva",
		"alertError":         "Erro de rede ou problema inesperado. Tente novamente.",
		"bookTitle":          "Reservar",
		"labelDate":          "Data",
		"labelPrice":         "Preço",
		"labelName":          "Seu Nome",
		"labelEmail":         "Seu E-mail",
		"labelPeople":        "Pessoas",
		"labelTotal":         "Total",
		"labelNotes":         "Observações (Opcional)",
		"btnSubmitting":      "Reservando...",
		"btnConfirm":         "Confirmar Reserva",
		"btnCancel":          "Cancelar",
		"paymentTitle":       "Reserva Realizada!",
		"paymentInstruction": "Escaneie o QR code abaixo para pagar via Pix.",
		"paymentWaiting":     "Aguardando confirmação do pagamento...",
		"labelPixString":     "Código Pix Copia e Cola",
		"btnClose":           "Fechar",
		"successTitle":       "Pagamento Confirmado!",
		"successMessage":     "Sua aventura está reservada. Enviamos um e-mail de confirmação para",
		"btnDone":            "Concluir",
		"tour.sunrise":       "Encontro com Golfinhos ao Amanhecer",
		"tour.sunset":        "Remada ao Pôr do Sol na Lagoa",
		"tour.full_day":      "Exploração Costeira",
	},
	"es": {
		"title":              "Consultar Disponibilidad",
		"selectDateLabel":    "Seleccione la Fecha",
		"loading":            "Cargando aventuras disponibles...",
		"errorGeneric":       "Lo sentimos, no pudimos cargar la disponibilidad. Inténtelo más tarde.",
		"noTours":            "No hay tours disponibles para esta fecha. ¡Pruebe otro día!",
		"duration":           "Duración",
		"spotsLeft":          "plazas libres",
		"soldOut":            "Agotado",
		"bookBtn":            "Reservar",
		"alertMissing":       "Por favor, indique nombre y correo electrónico.",
		"alertEmail":         "Correo electrónico no válido.",
		"alertPartySize":     "Elija un número válido de personas.",
		"alertFailed":        "La reserva falló",
		"alertError":         "Error de red o problema inesperado. Inténtelo de nuevo.",
		"bookTitle":          "Reservar",
		"labelDate":          "Fecha",
		"labelPrice":         "Precio",
		"labelName":          "Su Nombre",
		"labelEmail":         "Su Correo",
		"labelPeople":        "Personas",
		"labelTotal":         "Total",
		"labelNotes":         "Notas Especiales (Opcional)",
		"btnSubmitting":      "Reservando...",
		"btnConfirm":         "Confirmar Reserva",
		"btnCancel":          "Cancelar",
		"paymentTitle":       "¡Reserva Realizada!",
		"paymentInstruction": "Escanee el código QR para pagar con Pix.",
		"paymentWaiting":     "Esperando la confirmación del pago...",
		"labelPixString":     "Código Pix Copia y Pega",
		"btnClose":           "Cerrar",
		"successTitle":       "¡Pago Confirmado!",
		"successMessage":     "Su aventura está reservada. Enviamos un correo de confirmación a",
		"btnDone":            "Listo",
		"tour.sunrise":       "Encuentro con Delfines al Amanecer",
		"tour.sunset":        "Remo al Atardecer en la Laguna",
		"tour.full_day":      "Exploración Costera",
	},
}

// T looks key up in lang, then in English, then returns the key itself.
func T(lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if v, ok := dictionaries[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// TourName resolves a tour type's display name, falling back to the
// backend-provided name for unknown types.
func TourName(lang, tourType, fallback string) string {
	key := "tour." + tourType
	if v := T(lang, key); v != key {
		return v
	}
	return fallback
}

func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}
