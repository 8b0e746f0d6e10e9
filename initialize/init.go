package initialize

import (
	"fmt"

	"elite-motors/app/flow"
	"elite-motors/app/models"
	"elite-motors/app/repo"
	"elite-motors/app/services"
	"elite-motors/app/store"
	"elite-motors/config"
	"elite-motors/global"
)

type App struct {
	Cfg       *config.Config
	KV        store.KV
	Watcher   *store.Watcher
	Users     *repo.UserRepository
	Session   *repo.SessionRepository
	Proposals *repo.ProposalRepository
	Consent   *repo.ConsentRepository
	Accounts  *services.AccountService
	Offers    *services.ProposalService
	Pages     *flow.Pages
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	if err := InitLogger(cfg.Log.Path); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	kv, watcher, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	global.KV = kv

	admin := models.User{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}
	users := repo.NewUserRepository(kv, admin)
	session := repo.NewSessionRepository(kv)
	proposals := repo.NewProposalRepository(kv)
	consent := repo.NewConsentRepository(kv)

	accounts := services.NewAccountService(users, session, kv, global.Logger)
	offers := services.NewProposalService(proposals, users, global.Logger)
	pages := flow.NewPages(accounts, offers, users, session, global.Logger)

	return &App{
		Cfg:       cfg,
		KV:        kv,
		Watcher:   watcher,
		Users:     users,
		Session:   session,
		Proposals: proposals,
		Consent:   consent,
		Accounts:  accounts,
		Offers:    offers,
		Pages:     pages,
	}, nil
}

func openStore(cfg *config.Config) (store.KV, *store.Watcher, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		kv, err := store.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		watcher, err := store.NewWatcher(cfg.Storage.Path)
		if err != nil {
			global.Logger.Warn().Err(err).Msg("store watcher unavailable")
			return kv, nil, nil
		}
		return kv, watcher, nil
	case "mysql":
		m := cfg.Storage.MySQL
		kv, err := store.OpenMySQL(store.MySQLConfig{Host: m.Host, Port: m.Port, User: m.User, Password: m.Pass, DBName: m.Name})
		return kv, nil, err
	case "redis":
		r := cfg.Storage.Redis
		kv, err := store.OpenRedis(store.RedisConfig{Addr: r.Addr, Password: r.Pass, DB: r.DB})
		return kv, nil, err
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
