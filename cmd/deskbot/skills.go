package main

import (
	"context"
	"fmt"

	"github.com/otoz-ai/salesdesk/skills"
)

func registerBuiltinSkills() {
	must(skills.Register(skills.Skill{
		Name:        "payment",
		Description: "Explains accepted payment methods.",
		Keywords:    []string{"payment", "pay", "bank", "wire", "transfer"},
	}, handlePayment))

	must(skills.Register(skills.Skill{
		Name:        "invoice",
		Description: "Confirms readiness to issue a proforma invoice.",
		Keywords:    []string{"invoice", "proforma"},
	}, handleInvoice))

	must(skills.Register(skills.Skill{
		Name:        "shipping",
		Description: "Explains destination and port-of-discharge requirements.",
		Keywords:    []string{"shipping", "ship", "port", "destination", "deliver"},
	}, handleShipping))
}

func handlePayment(_ context.Context, _ string) (skills.Result, error) {
	return skills.Result{
		Content: "We accept wire transfers to our corporate bank account in Tokyo. The full details will be on the proforma invoice.",
	}, nil
}

func handleInvoice(_ context.Context, _ string) (skills.Result, error) {
	return skills.Result{
		Content: "Absolutely. I can prepare the proforma invoice. Just to confirm, are you ready to proceed with the purchase at the agreed price?",
	}, nil
}

func handleShipping(_ context.Context, _ string) (skills.Result, error) {
	return skills.Result{
		Content: "We ship worldwide. Let me know the destination country and the port of discharge, and I'll include them on the invoice.",
	}, nil
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("failed to register skill: %v", err))
	}
}
