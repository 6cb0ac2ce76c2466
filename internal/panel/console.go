package panel

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned by Console.Run when the input ends before salir.
var ErrInputClosed = errors.New("panel input closed")

const consoleHelp = `Comandos:
  recargar                     vuelve a leer pedidos e inventario
  detalle <pedido>             muestra el detalle de un pedido de la farmacia
  confirmar <pedido>           confirma la receta
  cancelar <pedido>            cancela por receta inválida
  entregar-repartidor <pedido> entrega el pedido al repartidor
  listo <pedido>               marca el pedido listo para retiro
  stock <producto> <valor>     actualiza el stock
  aceptar <pedido>             el repartidor toma el pedido
  rechazar <pedido>            el repartidor descarta el pedido
  entregar <pedido>            el repartidor confirma la entrega
  ayuda                        muestra esta ayuda
  salir                        termina
`

// Prompt is the terminal both for commands and for confirmations. It reads
// one line at a time from a single input, so a confirmation answer is never
// taken as a command.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ Confirmer = (*Prompt)(nil)

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

// Confirm asks message and waits for an answer. Only s, si, sí, y and yes
// confirm; the end of input declines.
func (p *Prompt) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [s/N]: ", message)
	answer, ok := p.readLine()
	if !ok {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}

func (p *Prompt) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *Prompt) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Console runs typed commands against the pharmacy and courier panels.
type Console struct {
	prompt   *Prompt
	pharmacy *PharmacyPanel
	courier  *CourierPanel
}

func NewConsole(prompt *Prompt, pharmacy *PharmacyPanel, courier *CourierPanel) *Console {
	return &Console{prompt: prompt, pharmacy: pharmacy, courier: courier}
}

// Run executes commands until salir, the end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.prompt.printf("%s", consoleHelp)
	for ctx.Err() == nil {
		c.prompt.printf("> ")
		line, ok := c.prompt.readLine()
		if !ok {
			if err := c.prompt.in.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return ErrInputClosed
		}
		if c.Execute(ctx, line) {
			return nil
		}
	}
	return nil
}

// Execute runs one command line and reports whether the console should stop.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "salir":
		return true
	case "ayuda":
		c.prompt.printf("%s", consoleHelp)
	case "recargar":
		c.act(func() Outcome {
			if err := c.pharmacy.Load(ctx); err != nil {
				return Failed
			}
			if err := c.courier.Load(ctx); err != nil {
				return Failed
			}
			return Applied
		})
	case "detalle":
		c.withOrder(name, args, func(id OrderID) { c.showDetail(ctx, id) })
	case "confirmar":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.pharmacy.ConfirmRecipe(ctx, id) })
	case "cancelar":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.pharmacy.CancelRecipe(ctx, id) })
	case "entregar-repartidor":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.pharmacy.DispatchToCourier(ctx, id) })
	case "listo":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.pharmacy.MarkReadyForPickup(ctx, id) })
	case "aceptar":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.courier.AcceptOrder(ctx, id) })
	case "rechazar":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.courier.RejectOrder(ctx, id) })
	case "entregar":
		c.orderAction(name, args, func(id OrderID) Outcome { return c.courier.ConfirmDelivery(ctx, id) })
	case "stock":
		c.updateStock(ctx, args)
	default:
		c.prompt.printf("Comando desconocido: %s. Escribe ayuda.\n", name)
	}
	return false
}

func (c *Console) updateStock(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.prompt.printf("Uso: stock <producto> <valor>\n")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		c.prompt.printf("Uso: stock <producto> <valor>\n")
		return
	}
	c.act(func() Outcome { return c.pharmacy.UpdateStock(ctx, ProductID(id), args[1]) })
}

func (c *Console) orderAction(name string, args []string, fn func(OrderID) Outcome) {
	c.withOrder(name, args, func(id OrderID) {
		c.act(func() Outcome { return fn(id) })
	})
}

func (c *Console) withOrder(name string, args []string, fn func(OrderID)) {
	if len(args) != 1 {
		c.prompt.printf("Uso: %s <pedido>\n", name)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		c.prompt.printf("Uso: %s <pedido>\n", name)
		return
	}
	fn(OrderID(id))
}

func (c *Console) showDetail(ctx context.Context, id OrderID) {
	modal := c.pharmacy.DetailModal()
	c.pharmacy.ShowDetail(ctx, id)
	content := modal.Content()
	if content.Kind == ContentHTML {
		c.prompt.printf("%s\n", content.HTML)
	} else {
		c.prompt.printf("%s\n", content.Message)
	}
	modal.Close()
}

// act runs fn and prints the toasts it raised followed by its outcome.
func (c *Console) act(fn func() Outcome) {
	seen := make(map[string]bool)
	for _, t := range c.toasts() {
		seen[t.ID.String()] = true
	}

	outcome := fn()

	for _, t := range c.toasts() {
		if seen[t.ID.String()] {
			continue
		}
		seen[t.ID.String()] = true
		c.prompt.printf("[%s] %s: %s\n", t.Kind, t.Title, t.Message)
	}
	c.prompt.printf("(%s)\n", outcome)
}

func (c *Console) toasts() []Toast {
	return append(c.pharmacy.Notifier().Active(), c.courier.Notifier().Active()...)
}
