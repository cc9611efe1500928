package main

import (
	"context"
	"flag"
	"net"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"hashring/internal/config"
	"hashring/internal/discovery"
	routerpb "hashring/internal/gen/api"
	"hashring/internal/router"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to YAML config file")
		listenAddr    = flag.String("listen", "", "gRPC listen address (overrides config)")
		membersStr    = flag.String("members", "", "Static members as id1=addr1,id2=addr2 (overrides config)")
		vnodes        = flag.Int("vnodes", 0, "Virtual nodes per member (overrides config)")
		consulAddr    = flag.String("consul-addr", "", "Consul agent address, enables discovery (overrides config)")
		consulService = flag.String("consul-service", "", "Consul service name to watch (overrides config)")
		consulTag     = flag.String("consul-tag", "", "Consul tag filter (overrides config)")
	)
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := loadConfig(*configPath, *listenAddr, *membersStr, *vnodes,
		*consulAddr, *consulService, *consulTag)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	srv := router.NewServer(cfg.VNodes)
	for _, m := range cfg.RouterMembers() {
		if _, err := srv.JoinMember(m); err != nil {
			logrus.WithError(err).WithField("member", m.ID).Fatal("failed to join static member")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Consul.Addr != "" {
		resolver, err := discovery.NewConsulResolver(cfg.Consul.Addr, cfg.VNodes)
		if err != nil {
			logrus.WithError(err).Fatal("failed to create consul resolver")
		}
		watcher := discovery.NewWatcher(resolver, srv,
			cfg.Consul.Service, cfg.Consul.Tag, cfg.Consul.PollInterval)
		go watcher.Run(ctx)
		logrus.WithFields(logrus.Fields{
			"consul":  cfg.Consul.Addr,
			"service": cfg.Consul.Service,
		}).Info("consul discovery enabled")
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logrus.WithError(err).WithField("addr", cfg.ListenAddr).Fatal("failed to listen")
	}

	grpcServer := grpc.NewServer()
	routerpb.RegisterRouterServer(grpcServer, srv)
	reflection.Register(grpcServer)

	go func() {
		<-ctx.Done()
		logrus.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logrus.WithFields(logrus.Fields{
		"addr":    cfg.ListenAddr,
		"members": len(cfg.Members),
		"vnodes":  cfg.VNodes,
	}).Info("router listening")

	if err := grpcServer.Serve(lis); err != nil {
		logrus.WithError(err).Fatal("gRPC server failed")
	}
}

// loadConfig merges the config file with command line overrides. Flags
// win over the file, the file wins over defaults.
func loadConfig(path, listenAddr, membersStr string, vnodes int, consulAddr, consulService, consulTag string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if vnodes > 0 {
		cfg.VNodes = vnodes
	}
	if membersStr != "" {
		members, err := config.ParseMembers(membersStr)
		if err != nil {
			return nil, err
		}
		cfg.Members = members
	}
	if consulAddr != "" {
		cfg.Consul.Addr = consulAddr
	}
	if consulService != "" {
		cfg.Consul.Service = consulService
	}
	if consulTag != "" {
		cfg.Consul.Tag = consulTag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
