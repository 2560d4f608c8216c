package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// TaskHandler maneja las tareas numeradas y simples de proyectos (protegido).
type TaskHandler struct {
	taskUC   *usecase.TaskUseCase
	simpleUC *usecase.SimpleTaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(taskUC *usecase.TaskUseCase, simpleUC *usecase.SimpleTaskUseCase) *TaskHandler {
	return &TaskHandler{taskUC: taskUC, simpleUC: simpleUC}
}

// ListByProject godoc
// @Summary      Tareas numeradas de un proyecto
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {array}   dto.TaskDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks [get]
func (h *TaskHandler) ListByProject(c *fiber.Ctx) error {
	out, err := h.taskUC.ListByProject(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarea numerada
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.TaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.taskUC.Create(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarea numerada
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del proyecto"
// @Param        taskId  path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks/{taskId} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.taskUC.GetByID(c.Context(), c.Params("taskId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea numerada
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del proyecto"
// @Param        taskId  path  string  true  "ID de la tarea"
// @Param        body    body  dto.TaskRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TaskDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks/{taskId} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.taskUC.Update(c.Context(), c.Params("taskId"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea numerada
// @Tags         tasks
// @Security     Bearer
// @Param        id      path  string  true  "ID del proyecto"
// @Param        taskId  path  string  true  "ID de la tarea"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.taskUC.Delete(c.Context(), c.Params("taskId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSimple godoc
// @Summary      Tareas simples de un proyecto
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.SimpleTaskDTO
// @Router       /api/projects/{id}/simple-tasks [get]
func (h *TaskHandler) ListSimple(c *fiber.Ctx) error {
	out, err := h.simpleUC.ListByProject(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// CreateSimple godoc
// @Summary      Crear tarea simple
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.SimpleTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.SimpleTaskDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/simple-tasks [post]
func (h *TaskHandler) CreateSimple(c *fiber.Ctx) error {
	var in dto.SimpleTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.simpleUC.Create(c.Context(), c.Params("id"), GetUserName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSimple godoc
// @Summary      Actualizar tarea simple
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del proyecto"
// @Param        taskId  path  string  true  "ID de la tarea"
// @Param        body    body  dto.SimpleTaskRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SimpleTaskDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/simple-tasks/{taskId} [put]
func (h *TaskHandler) UpdateSimple(c *fiber.Ctx) error {
	var in dto.SimpleTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.simpleUC.Update(c.Context(), c.Params("taskId"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteSimple godoc
// @Summary      Eliminar tarea simple
// @Tags         tasks
// @Security     Bearer
// @Param        id      path  string  true  "ID del proyecto"
// @Param        taskId  path  string  true  "ID de la tarea"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/simple-tasks/{taskId} [delete]
func (h *TaskHandler) DeleteSimple(c *fiber.Ctx) error {
	if err := h.simpleUC.Delete(c.Context(), c.Params("taskId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
