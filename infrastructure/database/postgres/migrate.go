package postgres

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/migrations"
)

var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate aplica as migrações embutidas até migrations.Version
func Migrate(dsn string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "erro ao abrir migrações embutidas")
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return errors.Wrap(err, "erro ao inicializar migrate")
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "erro ao obter versão do schema")
	}

	if dirty {
		return errors.Wrapf(ErrDirtyDatabase, "versão %d", version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	logrus.WithFields(logrus.Fields{
		"from": version,
		"to":   migrations.Version,
	}).Info("Schema do banco atualizado")

	return nil
}
