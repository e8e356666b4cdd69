// Command comexctl ejecuta las simulaciones y la evaluación de drawback desde la línea de comandos.
//
//	comexctl air-import -in entrada.json [-format json|text|pdf|xml] [-out archivo]
//	comexctl sea-import | simplified-import | drawback-evaluate ...
//	comexctl rules
//	comexctl token -subject operador -role analista
//
// Códigos de salida: 0 éxito, 2 entrada rechazada por validación, 1 uso o E/S.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/drawback"
	infrapdf "github.com/jhoicas/comex-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comex-api/internal/infrastructure/xmlmemo"
	"github.com/jhoicas/comex-api/pkg/config"
	"github.com/jhoicas/comex-api/pkg/jwt"
	"github.com/jhoicas/comex-api/pkg/logger"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
)

var errUsage = errors.New("uso inválido")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cli estado de una invocación.
type cli struct {
	cfg    *config.Config
	uc     *simulation.UseCase
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logger.New(logger.Config{Env: "production", Level: cfg.App.LogLevel, Output: stderr})

	rules, err := drawback.RuleTableFromConfig(cfg.Drawback.Rules)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	c := &cli{
		cfg:    cfg,
		uc:     simulation.NewUseCase(rules, simulation.WithLogger(log)),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "air-import":
		err = simulate(c, cmd, rest, c.uc.SimulateAir)
	case "sea-import":
		err = simulate(c, cmd, rest, c.uc.SimulateSea)
	case "simplified-import":
		err = simulate(c, cmd, rest, c.uc.SimulateSimplified)
	case "drawback-evaluate":
		err = c.drawbackEvaluate(rest)
	case "rules":
		err = c.writeJSON(c.stdout, c.uc.Rules())
	case "token":
		err = c.token(rest)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "subcomando desconocido %q\n", cmd)
		usage(stderr)
		return exitUsage
	}
	return c.exitCode(err)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "uso: comexctl <air-import|sea-import|simplified-import|drawback-evaluate|rules|token> [flags]")
}

// exitCode imprime el error en stderr (JSON para validación) y elige el código de salida.
func (c *cli) exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case domain.IsValidation(err):
		_ = c.writeJSON(c.stderr, dto.ErrorResponse{Code: simulation.ErrorCode(err), Message: err.Error()})
		return exitValidation
	default:
		fmt.Fprintln(c.stderr, "error:", err)
		return exitUsage
	}
}

// ioFlags flags comunes de los subcomandos de cálculo.
type ioFlags struct {
	in     string
	format string
	out    string
}

func parseIOFlags(name string, args []string, stderr io.Writer) (ioFlags, error) {
	var f ioFlags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "", "archivo JSON de entrada (vacío = stdin)")
	fs.StringVar(&f.format, "format", "json", "formato de salida: json, text, pdf, xml")
	fs.StringVar(&f.out, "out", "", "archivo de salida (vacío = stdout)")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w: %v", errUsage, err)
	}
	switch f.format {
	case "json", "text", "pdf", "xml":
	default:
		return f, fmt.Errorf("%w: -format %q (json|text|pdf|xml)", errUsage, f.format)
	}
	return f, nil
}

func (c *cli) decode(path string, v any) error {
	r := c.stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("abrir entrada: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("entrada JSON inválida: %w", err)
	}
	return nil
}

func simulate[Req any](c *cli, name string, args []string, fn func(context.Context, Req) (*dto.CostResponse, error)) error {
	f, err := parseIOFlags(name, args, c.stderr)
	if err != nil {
		return err
	}
	var req Req
	if err := c.decode(f.in, &req); err != nil {
		return err
	}
	ctx := context.Background()
	res, err := fn(ctx, req)
	if err != nil {
		return err
	}
	return c.emit(f, res, costText(res), func(r simulation.Renderer) ([]byte, error) {
		return r.RenderCost(ctx, res)
	})
}

func (c *cli) drawbackEvaluate(args []string) error {
	f, err := parseIOFlags("drawback-evaluate", args, c.stderr)
	if err != nil {
		return err
	}
	var req dto.DrawbackRequest
	if err := c.decode(f.in, &req); err != nil {
		return err
	}
	ctx := context.Background()
	res, err := c.uc.EvaluateDrawback(ctx, req)
	if err != nil {
		return err
	}
	return c.emit(f, res, drawbackText(res), func(r simulation.Renderer) ([]byte, error) {
		return r.RenderDrawback(ctx, res)
	})
}

// emit escribe el resultado en el formato pedido.
func (c *cli) emit(f ioFlags, res any, text string, render func(simulation.Renderer) ([]byte, error)) error {
	var out []byte
	switch f.format {
	case "text":
		out = []byte(text)
	case "pdf":
		b, err := render(infrapdf.NewMarotoPDFGenerator(c.cfg.App.Name))
		if err != nil {
			return err
		}
		out = b
	case "xml":
		b, err := render(xmlmemo.NewRenderer())
		if err != nil {
			return err
		}
		out = b
	default:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("serializar resultado: %w", err)
		}
		out = append(b, '\n')
	}
	if f.out == "" {
		_, err := c.stdout.Write(out)
		return err
	}
	if err := os.WriteFile(f.out, out, 0o644); err != nil {
		return fmt.Errorf("escribir salida: %w", err)
	}
	return nil
}

func (c *cli) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) token(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	subject := fs.String("subject", "", "sujeto del token (operador)")
	role := fs.String("role", jwt.RoleAnalyst, "rol: analista | admin")
	secret := fs.String("secret", c.cfg.JWT.Secret, "secreto HMAC (por defecto JWT_SECRET)")
	exp := fs.Int("exp", c.cfg.JWT.Expiration, "expiración en minutos")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *role != jwt.RoleAnalyst && *role != jwt.RoleAdmin {
		return fmt.Errorf("%w: rol %q (analista|admin)", errUsage, *role)
	}
	tok, err := jwt.Generate(*secret, *subject, *role, c.cfg.JWT.Issuer, *exp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout, tok)
	return err
}
