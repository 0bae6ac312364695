package domain

import "time"

// Countries accepted by the payment form, keyed by form value
var Countries = []Country{
	{Code: "us", Name: "United States"},
	{Code: "ca", Name: "Canada"},
	{Code: "uk", Name: "United Kingdom"},
	{Code: "au", Name: "Australia"},
	{Code: "de", Name: "Germany"},
	{Code: "fr", Name: "France"},
}

// Country is a selectable billing country
type Country struct {
	Code string
	Name string
}

// PaymentDetails is the simulated payment form. Every field is required.
type PaymentDetails struct {
	CardNumber string `validate:"required,card" label:"Card Number"`
	ExpiryDate string `validate:"required,expiry" label:"Expiry Date"`
	CVV        string `validate:"required,numeric,min=3,max=4" label:"CVV"`
	Name       string `validate:"required" label:"Full Name"`
	Email      string `validate:"required,email" label:"Email"`
	Address    string `validate:"required" label:"Address"`
	City       string `validate:"required" label:"City"`
	ZipCode    string `validate:"required" label:"ZIP Code"`
	Country    string `validate:"required,oneof=us ca uk au de fr" label:"Country"`
}

// Quote is the price breakdown shown before purchase
type Quote struct {
	Subtotal float64
	Tax      float64
	Total    float64
	Currency string
}

// Receipt records a completed simulated purchase
type Receipt struct {
	OrderID     string
	Book        Book
	Quote       Quote
	PurchasedAt time.Time
}
