package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all marketplace endpoint handlers into one struct.
type HandlerBundle struct {
	// Search and provider registry endpoints
	Search          gin.HandlerFunc
	ListProviders   gin.HandlerFunc
	GetProvider     gin.HandlerFunc
	PendingRequests gin.HandlerFunc

	// Booking lifecycle endpoints
	CreateRequest   gin.HandlerFunc
	AcceptRequest   gin.HandlerFunc
	RejectRequest   gin.HandlerFunc
	CheckStatus     gin.HandlerFunc
	UpdateJobStatus gin.HandlerFunc
	Reschedule      gin.HandlerFunc
	Cancel          gin.HandlerFunc
	MyBookings      gin.HandlerFunc
	SubmitRating    gin.HandlerFunc

	// Payment endpoints
	ProcessPayment gin.HandlerFunc
	GetReceipt     gin.HandlerFunc
	GetReceiptPDF  gin.HandlerFunc

	// Chat endpoints
	SendMessage  gin.HandlerFunc
	ListMessages gin.HandlerFunc

	// Provider dashboard and settings endpoints
	Earnings      gin.HandlerFunc
	Stats         gin.HandlerFunc
	GetSchedule   gin.HandlerFunc
	SetSchedule   gin.HandlerFunc
	GetProfile    gin.HandlerFunc
	UpdateProfile gin.HandlerFunc

	// Realtime endpoint
	WebSocket gin.HandlerFunc
}
