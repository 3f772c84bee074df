package services

import (
	"net"
	"strings"
)

// Known throwaway-mail providers. Registration policy can reject these.
var dominiosDesechables = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"trashmail.com":     {},
	"yopmail.com":       {},
	"sharklasers.com":   {},
	"getnada.com":       {},
	"emailondeck.com":   {},
}

// MXLookup is a seam over net.LookupMX so tests run without DNS.
type MXLookup func(domain string) ([]*net.MX, error)

func esDominioDesechable(domain string) bool {
	_, ok := dominiosDesechables[strings.ToLower(domain)]
	return ok
}

func tieneMX(lookup MXLookup, domain string) bool {
	mxs, err := lookup(domain)
	return err == nil && len(mxs) > 0
}

func dominioDe(correo string) string {
	_, dom, _ := strings.Cut(correo, "@")
	return dom
}
