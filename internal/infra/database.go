package infra

import (
	"fmt"

	"dalctmarket/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes, check constraints).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on PostgreSQL < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Categoria{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Inventario{},
		&model.Promocion{},
		&model.Cliente{},
		&model.Caja{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.ParametroSistema{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// One open register per user, enforced at the database so a racing
		// double-open loses with a constraint violation instead of winning.
		{"partial unique index on open cajas", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_cajas_usuario_abierta') THEN
    CREATE UNIQUE INDEX uni_cajas_usuario_abierta
        ON cajas (id_usuario)
        WHERE estado = 'ABIERTA';
  END IF;
END $$`},
		// Stock can never go negative even if a bug bypasses the guarded UPDATE.
		{"non-negative stock check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_inventarios_cantidad_no_negativa') THEN
    ALTER TABLE inventarios
      ADD CONSTRAINT chk_inventarios_cantidad_no_negativa CHECK (cantidad_disponible >= 0);
  END IF;
END $$`},
		// Query path for closing reconciliation: cash sales per register.
		{"ventas caja/metodo index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_caja_metodo_estado') THEN
    CREATE INDEX idx_ventas_caja_metodo_estado
        ON ventas (id_caja, metodo_pago, estado);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
