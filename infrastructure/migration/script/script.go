// Popula o banco com clientes, parceiros, campanhas e usuários de teste.
// Uso: go run ./infrastructure/migration/script
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

const (
	numClients          = 10
	numPartners         = 5
	campaignsPerClient  = 3
	maxCampaignAgeDays  = 30
	seedAdminEmail      = "admin@backpub.com"
	seedAdminPassword   = "admin123"
	seedClientPassword  = "client123"
	seedPartnerPassword = "partner123"
)

var (
	companyNames = []string{
		"Boulangerie Martin", "Pharmacie du Port", "Garage Lefèvre", "Fromagerie Dubois",
		"Librairie Vauban", "Optique Caen Centre", "Fleurs & Jardins", "Cave Saint-Pierre",
		"Pizzeria Bella", "Pressing Express", "Coiffure Élégance", "Auto-École Horizon",
	}
	partnerNames = []string{
		"Imprimerie Normande", "Distri Ouest", "Print & Go", "Boîtes Express", "Calvados Diffusion",
	}
	cities      = []string{"Caen", "Rouen", "Le Havre", "Bayeux", "Lisieux"}
	postalCodes = []string{"14000", "14100", "14200", "14400", "76000", "76100", "76600", "50100", "61000"}
	// Sem ASSIGNED_TO_PARTNER e SENT_TO_PRINT, que dependem de parceiro e impressão
	seedStatuses = []domain.CampaignStatus{
		domain.StatusCreated,
		domain.StatusInPrinting,
		domain.StatusPrinted,
		domain.StatusInDistribution,
		domain.StatusDelivered,
		domain.StatusFinished,
	}
)

type seedClient struct {
	ID          string
	CompanyName string
	Email       string
	City        string
	PostalCode  string
}

type seedUser struct {
	user     *domain.User
	password string
}

type seedPartner struct {
	ID          string
	CompanyName string
	City        string
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de dados de teste...")

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var (
		clients   []seedClient
		partners  []seedPartner
		campaigns int
	)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		if clients, err = insertClients(ctx, tx, rng); err != nil {
			return err
		}
		if partners, err = insertPartners(ctx, tx, rng); err != nil {
			return err
		}
		campaigns, err = insertCampaigns(ctx, tx, rng, clients, partners)
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de teste, transação revertida")
	}

	logrus.Debugf("Clientes criados:\n%s", utils.PrettyJson(clients))

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)
	createUsers(ctx, authenticator, clients, partners)

	logrus.WithFields(logrus.Fields{
		"clients":   len(clients),
		"partners":  len(partners),
		"campaigns": campaigns,
	}).Info("Dados de teste criados com sucesso")
}

func insertClients(ctx context.Context, tx *sql.Tx, rng *rand.Rand) ([]seedClient, error) {
	logrus.Infof("Criando %d clientes...", numClients)

	clients := make([]seedClient, 0, numClients)
	insert := squirrel.Insert("clients").
		Columns("id", "company_name", "email", "city", "postal_code").
		PlaceholderFormat(squirrel.Dollar)

	for i := 0; i < numClients; i++ {
		id, err := utils.GenerateIDWithPrefix(utils.PrefixClient)
		if err != nil {
			return nil, err
		}

		client := seedClient{
			ID:          id,
			CompanyName: companyNames[i%len(companyNames)],
			Email:       fmt.Sprintf("client%d@example.com", i+1),
			City:        cities[rng.Intn(len(cities))],
			PostalCode:  postalCodes[rng.Intn(len(postalCodes))],
		}
		insert = insert.Values(client.ID, client.CompanyName, client.Email, client.City, client.PostalCode)
		clients = append(clients, client)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir clientes: %w", err)
	}

	return clients, nil
}

func insertPartners(ctx context.Context, tx *sql.Tx, rng *rand.Rand) ([]seedPartner, error) {
	logrus.Infof("Criando %d parceiros...", numPartners)

	partners := make([]seedPartner, 0, numPartners)
	insert := squirrel.Insert("partners").
		Columns("id", "company_name", "city").
		PlaceholderFormat(squirrel.Dollar)

	for i := 0; i < numPartners; i++ {
		id, err := utils.GenerateIDWithPrefix(utils.PrefixPartner)
		if err != nil {
			return nil, err
		}

		partner := seedPartner{
			ID:          id,
			CompanyName: partnerNames[i%len(partnerNames)],
			City:        cities[rng.Intn(len(cities))],
		}
		insert = insert.Values(partner.ID, partner.CompanyName, partner.City)
		partners = append(partners, partner)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir parceiros: %w", err)
	}

	return partners, nil
}

func randomPostalCodes(rng *rand.Rand) string {
	n := 3 + rng.Intn(6)
	codes := make([]string, n)
	for i := range codes {
		codes[i] = postalCodes[rng.Intn(len(postalCodes))]
	}
	return strings.Join(codes, ", ")
}

func insertCampaigns(ctx context.Context, tx *sql.Tx, rng *rand.Rand, clients []seedClient, partners []seedPartner) (int, error) {
	logrus.Infof("Criando %d campanhas por cliente...", campaignsPerClient)

	now := time.Now()
	insert := squirrel.Insert("campaigns").
		Columns("id", "order_number", "name", "status", "postal_codes", "estimated_price", "quantity", "client_id", "partner_id", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	total := 0
	for _, client := range clients {
		for i := 0; i < campaignsPerClient; i++ {
			id, err := utils.GenerateIDWithPrefix(utils.PrefixCampaign)
			if err != nil {
				return 0, err
			}
			orderNumber, err := utils.GenerateIDWithPrefix(utils.PrefixOrder)
			if err != nil {
				return 0, err
			}

			status := seedStatuses[rng.Intn(len(seedStatuses))]

			var partnerID *string
			if status != domain.StatusCreated {
				partnerID = &partners[rng.Intn(len(partners))].ID
			}

			// Preço ausente em parte das campanhas
			var price decimal.NullDecimal
			if rng.Float64() > 0.1 {
				price = decimal.NewNullDecimal(decimal.NewFromFloat(100 + rng.Float64()*900).Round(2))
			}

			createdAt := now.Add(-time.Duration(rng.Intn(maxCampaignAgeDays*24)) * time.Hour)

			insert = insert.Values(
				id,
				orderNumber,
				fmt.Sprintf("%s - Campagne %d %d", client.CompanyName, i+1, now.Year()),
				status,
				randomPostalCodes(rng),
				price,
				(1+rng.Intn(5))*1000,
				client.ID,
				partnerID,
				createdAt,
			)
			total++
		}
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("erro ao inserir campanhas: %w", err)
	}

	return total, nil
}

// createUsers usa o serviço de autenticação para gravar as senhas em bcrypt.
// Usuários já existentes são ignorados.
func createUsers(ctx context.Context, authenticator authenticating.Authenticator, clients []seedClient, partners []seedPartner) {
	users := []seedUser{
		{
			user:     &domain.User{Name: "BackPub Admin", Email: seedAdminEmail, RoleID: domain.RoleAdmin, Active: true},
			password: seedAdminPassword,
		},
	}

	for i := range clients {
		users = append(users, seedUser{
			user: &domain.User{
				Name:     clients[i].CompanyName,
				Email:    clients[i].Email,
				RoleID:   domain.RoleClient,
				ClientID: &clients[i].ID,
				Active:   true,
			},
			password: seedClientPassword,
		})
	}

	for i := range partners {
		users = append(users, seedUser{
			user: &domain.User{
				Name:      partners[i].CompanyName,
				Email:     fmt.Sprintf("partner%d@example.com", i+1),
				RoleID:    domain.RolePartner,
				PartnerID: &partners[i].ID,
				Active:    true,
			},
			password: seedPartnerPassword,
		})
	}

	for _, u := range users {
		created, err := authenticator.CreateUser(ctx, u.user, u.password)
		if err != nil {
			logrus.WithError(err).Warnf("Usuário %s não criado", u.user.Email)
			continue
		}
		logrus.Infof("Usuário %s criado (perfil %d)", created.Email, created.RoleID)
	}
}
