/**
 * @description
 * This file contains the core service type for the wallet. The `Service`
 * struct orchestrates registration, authentication, balance transfers and
 * ledger history, coordinating between the database repository, the token
 * manager and the message broker.
 *
 * Key features:
 * - Implements the money-transfer flow with every precondition validated
 *   before any balance mutation.
 * - Delegates the debit/credit/insert triple to a single atomic repository
 *   call so a transfer either commits completely or not at all.
 * - Publishes events to RabbitMQ for asynchronous processing by consumers.
 *
 * @dependencies
 * - internal/domain, internal/store: For domain models and data access.
 * - pkg/token, pkg/rabbitmq: For bearer tokens and event publishing.
 */

package app

import (
	"github.com/kudiwallet/wallet-service/pkg/rabbitmq"
	"github.com/kudiwallet/wallet-service/pkg/token"

	"github.com/kudiwallet/wallet-service/internal/store"
)

const (
	// DefaultMinTransferAmount is the smallest transferable amount when no
	// threshold is configured.
	DefaultMinTransferAmount = 100

	// transactionPageSize is the fixed ledger page size.
	transactionPageSize = 10

	eventsExchange = "wallet.events"
)

// Service provides the core business logic for the wallet.
type Service struct {
	repo              store.Repository
	tokens            *token.Manager
	eventProducer     rabbitmq.Publisher
	provisioner       Provisioner
	minTransferAmount int64
}

// NewService creates a new wallet service instance.
func NewService(repo store.Repository, tokens *token.Manager, producer rabbitmq.Publisher, provisioner Provisioner, minTransferAmount int64) *Service {
	if minTransferAmount <= 0 {
		minTransferAmount = DefaultMinTransferAmount
	}
	return &Service{
		repo:              repo,
		tokens:            tokens,
		eventProducer:     producer,
		provisioner:       provisioner,
		minTransferAmount: minTransferAmount,
	}
}
