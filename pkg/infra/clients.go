package infra

import (
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/infra/gitcmd"
	"github.com/secmon-lab/leakscan/pkg/infra/gitleaks"
)

type Clients struct {
	catalog  interfaces.Catalog
	cloner   interfaces.Cloner
	scanner  interfaces.Scanner
	bqClient interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cloner:  gitcmd.New("git"),
		scanner: gitleaks.New("gitleaks"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Catalog() interfaces.Catalog {
	return x.catalog
}
func (x *Clients) Cloner() interfaces.Cloner {
	return x.cloner
}
func (x *Clients) Scanner() interfaces.Scanner {
	return x.scanner
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithCatalog(client interfaces.Catalog) Option {
	return func(x *Clients) {
		x.catalog = client
	}
}

func WithCloner(client interfaces.Cloner) Option {
	return func(x *Clients) {
		x.cloner = client
	}
}

func WithScanner(client interfaces.Scanner) Option {
	return func(x *Clients) {
		x.scanner = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
