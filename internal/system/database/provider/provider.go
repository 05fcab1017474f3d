/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/recomlabs/amp/internal/system/config"
	"github.com/recomlabs/amp/internal/system/database/client"
	"github.com/recomlabs/amp/internal/system/database/model"
	"github.com/recomlabs/amp/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// DBNameAppData identifies the application data source holding compositions, templates,
// campaigns, brands and schedules.
const DBNameAppData = "appdata"

// DBNameRuntime identifies the runtime data source holding execution records.
const DBNameRuntime = "runtime"

// dbConfig represents the resolved local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	appDataClient client.DBClientInterface
	appDataMutex  sync.RWMutex
	runtimeClient client.DBClientInterface
	runtimeMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// NewDBProvider returns the shared instance of DBProvider.
func NewDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// The returned client wraps a shared connection pool; callers must not close it.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case DBNameAppData:
		appDataConfig := config.GetAMPRuntime().Config.Database.AppData
		return d.getOrInitClient(&d.appDataClient, &d.appDataMutex, appDataConfig)
	case DBNameRuntime:
		runtimeConfig := config.GetAMPRuntime().Config.Database.Runtime
		return d.getOrInitClient(&d.runtimeClient, &d.runtimeMutex, runtimeConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *client.DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		dbClient := *clientPtr
		mutex.RUnlock()
		return dbClient, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *client.DBClientInterface, dataSource config.DataSource) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbCfg, err := d.getDBConfig(dataSource)
	if err != nil {
		return err
	}

	db, err := sql.Open(dbCfg.driverName, dbCfg.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	// Enable foreign key constraints for SQLite databases.
	if dbCfg.driverName == dataSourceTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dataSource.Name, err, closeErr)
			}
			return fmt.Errorf("failed to enable foreign key constraints for %s: %w", dataSource.Name, err)
		}
	}

	logger.Debug("Initialized database client", log.String("database", dataSource.Name),
		log.String("type", dataSource.Type))

	*clientPtr = client.NewDBClient(model.NewDB(db), dbCfg.driverName)
	return nil
}

// getDBConfig resolves the driver name and DSN for the given data source.
func (d *DBProvider) getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Name,
			dataSource.Username, dataSource.Password, dataSource.SSLMode)
		return dbConfig{dsn: dsn, driverName: dataSourceTypePostgres}, nil
	case dataSourceTypeSQLite:
		dbPath := dataSource.Path
		if dbPath == "" {
			return dbConfig{}, fmt.Errorf("sqlite data source %s has no path configured", dataSource.Name)
		}
		ampHome := config.GetAMPRuntime().AMPHome
		dsn := path.Join(ampHome, dbPath)
		if dataSource.Options != "" {
			dsn += "?" + dataSource.Options
		}
		return dbConfig{dsn: dsn, driverName: dataSourceTypeSQLite}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
