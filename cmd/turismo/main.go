package main

import (
	clienteHandler "turismo/internal/clientes/handler"
	clienteService "turismo/internal/clientes/service"
	healthHandler "turismo/internal/health/handler"
	hotelHandler "turismo/internal/hotels/handler"
	hotelService "turismo/internal/hotels/service"
	reservationHandler "turismo/internal/reservations/handler"
	reservationService "turismo/internal/reservations/service"
	ticketHandler "turismo/internal/tickets/handler"
	ticketService "turismo/internal/tickets/service"
	tourHandler "turismo/internal/tours/handler"
	tourService "turismo/internal/tours/service"
	vueloHandler "turismo/internal/vuelos/handler"
	vueloService "turismo/internal/vuelos/service"
	"turismo/pkg/app"
	"turismo/pkg/config"
	"turismo/pkg/contracts"
	"turismo/pkg/kafka"
	kafka_config "turismo/pkg/kafka/config"
	kafka_middleware "turismo/pkg/kafka/middleware"
	"turismo/pkg/model"
	"turismo/pkg/store"
	"turismo/pkg/validation"
	"turismo/pkg/view"
)

const ServiceName = "turismo"

type repositories struct {
	hotels       store.Repository[model.Hotel]
	tours        store.Repository[model.Tour]
	vuelos       store.Repository[model.Vuelo]
	clientes     store.Repository[model.Cliente]
	reservations store.Repository[model.Reservation]
	tickets      store.Repository[model.Ticket]
}

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting turismo back-office")
	serverApp := app.NewApplication(cfg)

	events, metrics := initEvents(cfg, serverApp)
	repos := initRepositories(cfg)

	renderer, err := view.New()
	if err != nil {
		cfg.Log.Fatal("Failed to parse templates", "error", err)
	}

	serverApp.SetApp(
		healthHandler.NewHealthHandler(cfg.Client.Mongo, metrics, cfg.Log),
		initHandlers(cfg, repos, renderer, events)...,
	)
	serverApp.Run()
}

func initRepositories(cfg *config.Config) repositories {
	db := cfg.Database()
	timeouts := cfg.StoreTimeouts()

	repos := repositories{
		hotels:       store.NewMongoRepository[model.Hotel](db, timeouts),
		tours:        store.NewMongoRepository[model.Tour](db, timeouts),
		vuelos:       store.NewMongoRepository[model.Vuelo](db, timeouts),
		clientes:     store.NewMongoRepository[model.Cliente](db, timeouts),
		reservations: store.NewMongoRepository[model.Reservation](db, timeouts),
		tickets:      store.NewMongoRepository[model.Ticket](db, timeouts),
	}

	cfg.Log.Info("Repositories initialized", "database", cfg.MongoDatabaseName)
	return repos
}

// initEvents returns the publisher every service announces writes through.
// Without brokers events are dropped and metrics is nil.
func initEvents(cfg *config.Config, serverApp *app.Application) (kafka.EventPublisher, *kafka_middleware.Metrics) {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, domain events disabled")
		return kafka.NoopPublisher{}, nil
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	metrics := kafka_middleware.NewMetrics()
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafka_middleware.MetricsProducerMiddleware(metrics))
	serverApp.OnShutdown("kafka-producer", producer)

	return kafka.NewEventPublisher(producer, kafkaCfg.PublishTimeout, cfg.Log), metrics
}

func initHandlers(cfg *config.Config, repos repositories, renderer view.Renderer, events kafka.EventPublisher) []contracts.Handler {
	maxMemory := cfg.MultipartMemory

	hotels := hotelService.NewHotelService(repos.hotels, events, cfg.Log)
	clientes := clienteService.NewClienteService(repos.clientes, events, cfg.Log)
	vuelos := vueloService.NewVueloService(repos.vuelos, events, cfg.Log)
	tours := tourService.NewTourService(repos.tours, events, cfg.Log)
	reservations := reservationService.NewReservationService(reservationService.Repositories{
		Reservations: repos.reservations,
		Hotels:       repos.hotels,
		Tours:        repos.tours,
		Clientes:     repos.clientes,
	}, validation.New(), events, cfg.Log)
	tickets := ticketService.NewTicketService(ticketService.Repositories{
		Tickets:  repos.tickets,
		Tours:    repos.tours,
		Vuelos:   repos.vuelos,
		Clientes: repos.clientes,
	}, events, cfg.Log)

	cfg.Log.Info("Services initialized")
	return []contracts.Handler{
		hotelHandler.NewHotelHandler(hotels, renderer, maxMemory, cfg.Log),
		clienteHandler.NewClienteHandler(clientes, renderer, maxMemory, cfg.Log),
		vueloHandler.NewVueloHandler(vuelos, renderer, maxMemory, cfg.Log),
		tourHandler.NewTourHandler(tours, renderer, maxMemory, cfg.Log),
		reservationHandler.NewReservationHandler(reservations, renderer, maxMemory, cfg.Log),
		ticketHandler.NewTicketHandler(tickets, renderer, maxMemory, cfg.Log),
	}
}
