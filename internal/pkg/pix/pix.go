// Package pix builds static Pix "copia e cola" payloads (BR Code, EMV
// merchant-presented format) and their QR images.
package pix

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	gui            = "br.gov.bcb.pix"
	maxNameLen     = 25
	maxCityLen     = 15
	maxTxIDLen     = 25
	defaultTxID    = "***"
	qrImageSize    = 256
	dataURIPrefix  = "data:image/png;base64,"
	countryCodeBR  = "BR"
	currencyBRL    = "986"
	categoryNoCode = "0000"
)

type Payload struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       float64
	TxID         string
}

// Encode returns the payload string, CRC included.
func (p Payload) Encode() string {
	var b strings.Builder
	b.WriteString(field("00", "01"))
	b.WriteString(field("26", field("00", gui)+field("01", p.Key)))
	b.WriteString(field("52", categoryNoCode))
	b.WriteString(field("53", currencyBRL))
	if p.Amount > 0 {
		b.WriteString(field("54", fmt.Sprintf("%.2f", p.Amount)))
	}
	b.WriteString(field("58", countryCodeBR))
	b.WriteString(field("59", truncate(p.MerchantName, maxNameLen)))
	b.WriteString(field("60", truncate(p.MerchantCity, maxCityLen)))
	b.WriteString(field("62", field("05", txID(p.TxID))))
	b.WriteString("6304")

	s := b.String()
	return s + fmt.Sprintf("%04X", CRC16(s))
}

// QRCodeDataURI renders payload as a PNG data URI usable as an image source.
func QRCodeDataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, n int) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > n {
		return s[:n]
	}
	return s
}

func txID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == maxTxIDLen {
			break
		}
	}
	if b.Len() == 0 {
		return defaultTxID
	}
	return b.String()
}
