package internal

import (
	"fmt"

	"DT-EDIT/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) error {
	dsn := cfg.Database.DSN()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database connected and migrated successfully")
	return nil
}

func autoMigrate() error {
	fmt.Println("Ensuring documents table exists...")
	result := DB.Exec(`
        CREATE TABLE IF NOT EXISTS documents (
            id varchar(191) PRIMARY KEY,
            name varchar(255) NOT NULL,
            kind varchar(50) NOT NULL,
            content json,
            status varchar(191) DEFAULT 'draft',
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_documents_name (name),
            INDEX idx_documents_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create documents table: %w", result.Error)
	}

	ensureDocumentsColumns := map[string]string{
		"name":       "ALTER TABLE documents ADD COLUMN name varchar(255) NOT NULL",
		"kind":       "ALTER TABLE documents ADD COLUMN kind varchar(50) NOT NULL",
		"content":    "ALTER TABLE documents ADD COLUMN content json",
		"status":     "ALTER TABLE documents ADD COLUMN status varchar(191) DEFAULT 'draft'",
		"created_at": "ALTER TABLE documents ADD COLUMN created_at datetime(3) NULL",
		"updated_at": "ALTER TABLE documents ADD COLUMN updated_at datetime(3) NULL",
		"deleted_at": "ALTER TABLE documents ADD COLUMN deleted_at datetime(3) NULL",
	}

	for column, stmt := range ensureDocumentsColumns {
		if err := ensureColumn("documents", column, stmt); err != nil {
			return err
		}
	}

	// Legacy deployments stored the payload in a `body` column.
	if DB.Migrator().HasColumn("documents", "body") {
		fmt.Println("Migrating documents.body to content...")
		if err := DB.Exec(`UPDATE documents SET content = body WHERE (content IS NULL OR content = '') AND body IS NOT NULL`).Error; err != nil {
			return fmt.Errorf("failed to migrate body to content: %w", err)
		}
	}

	fmt.Println("Creating document_versions table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS document_versions (
            id varchar(191) PRIMARY KEY,
            document_id varchar(191) NOT NULL,
            content json,
            label varchar(255),
            created_at datetime(3) NULL,
            INDEX idx_document_versions_document_id (document_id),
            INDEX idx_document_versions_created_at (created_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create document_versions table: %w", result.Error)
	}

	ensureVersionColumns := map[string]string{
		"document_id": "ALTER TABLE document_versions ADD COLUMN document_id varchar(191) NOT NULL",
		"content":     "ALTER TABLE document_versions ADD COLUMN content json",
		"label":       "ALTER TABLE document_versions ADD COLUMN label varchar(255)",
		"created_at":  "ALTER TABLE document_versions ADD COLUMN created_at datetime(3) NULL",
	}

	for column, stmt := range ensureVersionColumns {
		if err := ensureColumn("document_versions", column, stmt); err != nil {
			return err
		}
	}

	fmt.Println("Creating businesses table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS businesses (
            id varchar(191) PRIMARY KEY,
            name varchar(255),
            address text,
            email varchar(255),
            logo_url longtext,
            tax_id varchar(100),
            tax_rate double,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create businesses table: %w", result.Error)
	}

	fmt.Println("Creating activity_logs table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS activity_logs (
            id varchar(191) PRIMARY KEY,
            method varchar(10) NOT NULL,
            path varchar(255) NOT NULL,
            user_agent text,
            ip_address varchar(45),
            request_body text,
            query_params text,
            status_code int NOT NULL,
            response_time bigint NOT NULL,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_activity_logs_deleted_at (deleted_at),
            INDEX idx_activity_logs_method (method),
            INDEX idx_activity_logs_path (path),
            INDEX idx_activity_logs_created_at (created_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity_logs table: %w", result.Error)
	}

	fmt.Println("Tables created/verified successfully")
	return nil
}

func ensureColumn(table, column, statement string) error {
	if DB.Migrator().HasColumn(table, column) {
		return nil
	}

	fmt.Printf("Adding missing column %s.%s...\n", table, column)
	if err := DB.Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
