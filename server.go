package euclideanring

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

type ServerCommand struct {
	Addr string
}

type httpError struct {
	statusText string
	statusCode int
	cause      error
}

func (c *ServerCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.Addr, "addr", ":8080", "listen address")
	return fs.Parse(args)
}

func (c *ServerCommand) Execute() error {
	return RunWebApp(c.Addr)
}

// RunWebApp serves the operations over HTTP on addr.
func RunWebApp(addr string) error {
	s := &http.Server{
		Addr:           addr,
		Handler:        NewHandler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	log.Printf("listening on %s", addr)
	return s.ListenAndServe()
}

// NewHandler returns the handler for the /eval and /numdiv endpoints.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/eval", wrapHandler(handleEval))
	mux.HandleFunc("/numdiv", wrapHandler(handleNumDiv))
	return mux
}

func wrapHandler(h func(w http.ResponseWriter, r *http.Request) error) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Printf("error returned from handler: %v", err)
			var hErr *httpError
			if !errors.As(err, &hErr) {
				hErr = newHTTPError(http.StatusInternalServerError, err)
			}
			hErr.WriteTo(w)
		}
	}
}

func handleEval(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return newHTTPError(http.StatusBadRequest, errors.New("cannot parse form"))
	}
	op, err := ParseOperation(r.Form.Get("op"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, err)
	}
	x, err := parseInt32Param(r, "x")
	if err != nil {
		return err
	}
	var y int32
	if op.Arity() == 2 {
		y, err = parseInt32Param(r, "y")
		if err != nil {
			return err
		}
	}

	v, err := Apply(op, x, y)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return newHTTPError(http.StatusBadRequest, err)
		}
		return err
	}
	return writeText(w, strconv.FormatInt(int64(v), 10))
}

func handleNumDiv(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return newHTTPError(http.StatusBadRequest, errors.New("cannot parse form"))
	}
	a, err := parseFloat64Param(r, "a")
	if err != nil {
		return err
	}
	b, err := parseFloat64Param(r, "b")
	if err != nil {
		return err
	}
	return writeText(w, FormatReal(ApplyReal(a, b)))
}

// FormatReal formats v in the shortest representation, printing
// infinities as "+Inf" and "-Inf".
func FormatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseInt32Param(r *http.Request, name string) (int32, error) {
	s := r.Form.Get(name)
	if s == "" {
		return 0, newHTTPError(http.StatusBadRequest, fmt.Errorf("%q parameter must not be empty", name))
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, newHTTPError(http.StatusBadRequest, fmt.Errorf("cannot parse %q parameter: %s", name, err))
	}
	return int32(v), nil
}

func parseFloat64Param(r *http.Request, name string) (float64, error) {
	s := r.Form.Get(name)
	if s == "" {
		return 0, newHTTPError(http.StatusBadRequest, fmt.Errorf("%q parameter must not be empty", name))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newHTTPError(http.StatusBadRequest, fmt.Errorf("cannot parse %q parameter: %s", name, err))
	}
	return v, nil
}

func writeText(w http.ResponseWriter, s string) error {
	w.Header().Set("Content-Type", "text/plain")
	_, err := fmt.Fprintln(w, s)
	return err
}

func newHTTPError(statusCode int, err error) *httpError {
	return &httpError{
		statusText: http.StatusText(statusCode),
		statusCode: statusCode,
		cause:      err,
	}
}

func (e *httpError) Error() string {
	if e.cause == nil {
		return e.statusText
	}
	return fmt.Sprintf("%s: %s", e.statusText, e.cause)
}

func (e *httpError) Unwrap() error {
	return e.cause
}

func (e *httpError) WriteTo(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	http.Error(w, e.Error(), e.statusCode)
}
