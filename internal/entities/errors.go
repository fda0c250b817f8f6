package entities

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrShopNotFound     = errors.New("shop not found")
	ErrDeliveryNotFound = errors.New("delivery not found")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")

	ErrDistanceExceeded    = errors.New("distance_exceeded: dropoff is outside the service radius")
	ErrPickupNotConfigured = errors.New("shop has no pickup location configured")

	ErrInvalidSignature      = errors.New("invalid webhook signature")
	ErrInvalidPayload        = errors.New("invalid webhook payload")
	ErrProviderNotConfigured = errors.New("courier provider is not configured")
)
