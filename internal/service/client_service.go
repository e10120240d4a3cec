package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/infra/repository"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/metrics"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

// ======================================================
// OPERAÇÕES
// ======================================================

const (
	OpList    = "list"
	OpGet     = "get"
	OpCreate  = "create"
	OpUpdate  = "update"
	OpEnable  = "enable"
	OpDisable = "disable"
	OpDelete  = "delete"
)

// Mensagens genéricas para falhas de persistência, por operação.
var storageMessages = map[string]string{
	OpList:    "Ocorreu um erro ao tentar listar os clientes.",
	OpGet:     "Ocorreu um erro inesperado ao obter o cliente.",
	OpCreate:  "Ocorreu um erro inesperado ao tentar inserir o cliente. Tente novamente.",
	OpUpdate:  "Ocorreu um erro inesperado ao atualizar o cliente. Tente novamente.",
	OpEnable:  "Ocorreu um erro ao ativar o cliente.",
	OpDisable: "Ocorreu um erro ao inativar o cliente.",
	OpDelete:  "Ocorreu um erro ao remover o cliente.",
}

const (
	msgNoActiveClients = "Não há clientes ativos cadastrados."
	msgConflict        = "Os dados do cliente foram atualizados posteriormente por outro utilizador!"
)

type UseCases struct {
	List      *ucClient.ListClients
	Get       *ucClient.GetClient
	Create    *ucClient.CreateClient
	Update    *ucClient.UpdateClient
	SetStatus *ucClient.SetClientStatus
	Delete    *ucClient.DeleteClient
}

// ClientService é a fronteira dos casos de uso: nenhum erro passa daqui,
// tudo vira dto.Result.
type ClientService struct {
	uc      UseCases
	metrics *metrics.Metrics
}

func NewClientService(uc UseCases, m *metrics.Metrics) *ClientService {
	return &ClientService{uc: uc, metrics: m}
}

func (s *ClientService) List(
	ctx context.Context,
	pageNumber int,
	pageSize int,
) dto.Result[dto.Page[dto.ClientDTO]] {

	start := time.Now()

	page, err := s.uc.List.Execute(ctx, dto.ListClientsQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
	if err != nil {
		return failure[dto.Page[dto.ClientDTO]](ctx, s, OpList, 0, start, err)
	}

	res := dto.OK(page)
	if len(page.Items) == 0 {
		res.AddMessages(msgNoActiveClients)
	}

	s.observe(OpList, metrics.OutcomeSuccess, start)
	return res
}

func (s *ClientService) Get(ctx context.Context, id int64) dto.Result[dto.ClientDTO] {
	start := time.Now()

	out, err := s.uc.Get.Execute(ctx, id)
	if err != nil {
		return failure[dto.ClientDTO](ctx, s, OpGet, id, start, err)
	}

	s.observe(OpGet, metrics.OutcomeSuccess, start)
	return dto.OK(out)
}

func (s *ClientService) Create(ctx context.Context, in dto.CreateClientDTO) dto.Result[dto.ClientDTO] {
	start := time.Now()

	out, err := s.uc.Create.Execute(ctx, in)
	if err != nil {
		return failure[dto.ClientDTO](ctx, s, OpCreate, 0, start, err)
	}

	s.observe(OpCreate, metrics.OutcomeSuccess, start)
	return dto.OK(out)
}

func (s *ClientService) Update(
	ctx context.Context,
	id int64,
	in dto.UpdateClientDTO,
) dto.Result[dto.ClientDTO] {

	start := time.Now()

	out, err := s.uc.Update.Execute(ctx, id, in)
	if err != nil {
		return failure[dto.ClientDTO](ctx, s, OpUpdate, id, start, err)
	}

	s.observe(OpUpdate, metrics.OutcomeSuccess, start)
	return dto.OK(out)
}

func (s *ClientService) Enable(ctx context.Context, id int64) dto.Result[dto.ClientDTO] {
	return s.setStatus(ctx, OpEnable, id, true)
}

func (s *ClientService) Disable(ctx context.Context, id int64) dto.Result[dto.ClientDTO] {
	return s.setStatus(ctx, OpDisable, id, false)
}

func (s *ClientService) setStatus(
	ctx context.Context,
	op string,
	id int64,
	active bool,
) dto.Result[dto.ClientDTO] {

	start := time.Now()

	out, err := s.uc.SetStatus.Execute(ctx, id, active)
	if err != nil {
		return failure[dto.ClientDTO](ctx, s, op, id, start, err)
	}

	s.observe(op, metrics.OutcomeSuccess, start)
	return dto.OK(out)
}

func (s *ClientService) Delete(
	ctx context.Context,
	id int64,
	in dto.DeleteClientDTO,
) dto.Result[dto.ClientDTO] {

	start := time.Now()

	out, err := s.uc.Delete.Execute(ctx, id, in)
	if err != nil {
		return failure[dto.ClientDTO](ctx, s, OpDelete, id, start, err)
	}

	s.observe(OpDelete, metrics.OutcomeSuccess, start)
	return dto.OK(out)
}

// ======================================================
// FALHAS
// ======================================================

func failure[T any](
	ctx context.Context,
	s *ClientService,
	op string,
	id int64,
	start time.Time,
	err error,
) dto.Result[T] {

	kind, messages := classify(op, id, err)

	log := logging.FromContext(ctx).With("operation", op, "error_kind", string(kind))
	if id != 0 {
		log = log.With("client_id", id)
	}

	if kind == dto.KindStorage {
		attrs := []any{"error", err}
		var se *repository.StorageError
		if errors.As(err, &se) && se.SQLState != "" {
			attrs = append(attrs, "sqlstate", se.SQLState)
		}
		log.Error("client_operation_failed", attrs...)
	} else {
		log.Info("client_operation_rejected", "error", err)
	}

	s.observe(op, string(kind), start)
	return dto.Fail[T](kind, messages...)
}

func classify(op string, id int64, err error) (dto.ErrorKind, []string) {
	var ve *validators.ValidationError
	switch {
	case errors.As(err, &ve):
		return dto.KindValidation, ve.Messages
	case errors.Is(err, domain.ErrClientNotFound):
		return dto.KindNotFound, []string{fmt.Sprintf("O cliente não existe. | Id: %d", id)}
	case errors.Is(err, domain.ErrVersionConflict):
		return dto.KindVersionConflict, []string{msgConflict}
	default:
		return dto.KindStorage, []string{storageMessages[op]}
	}
}

func (s *ClientService) observe(op, outcome string, start time.Time) {
	s.metrics.Observe(op, outcome, time.Since(start))
}
