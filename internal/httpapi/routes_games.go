package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/validate"
)

// ----------------------------- syllables -----------------------------------

type syllableStartReq struct {
	Level    int  `json:"level"`
	Adaptive bool `json:"adaptive"`
}

type syllableAnswerReq struct {
	TaskID int    `json:"taskId"`
	Option string `json:"option"`
}

func (s *Server) mountSyllables(r chi.Router) {
	r.Route("/syllables", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req syllableStartReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.start(w, r, session.Plan{App: crowns.AppSyllables, Level: req.Level, Adaptive: req.Adaptive})
		})
		r.Get("/{id}", s.handleGet(crowns.AppSyllables))
		r.Delete("/{id}", s.handleFinish(crowns.AppSyllables))
		r.Post("/{id}/answer", func(w http.ResponseWriter, r *http.Request) {
			var req syllableAnswerReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.answer(w, r, crowns.AppSyllables, func(sess session.Session) (session.Outcome, error) {
				return sess.(*session.SyllableSession).Answer(r.Context(), req.TaskID, req.Option)
			})
		})
	})
}

// answer runs fn on the addressed session and writes the outcome.
func (s *Server) answer(w http.ResponseWriter, r *http.Request, app crowns.App, fn func(session.Session) (session.Outcome, error)) {
	var res answerRes
	err := s.sessions.With(chi.URLParam(r, "id"), app, func(sess session.Session) error {
		out, err := fn(sess)
		if err != nil {
			return err
		}
		res = answerRes{Outcome: out, Session: sess.Snapshot()}
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// -------------------------------- math -------------------------------------

type mathStartReq struct {
	Level    int    `json:"level"`
	Adaptive bool   `json:"adaptive"`
	Operator string `json:"operator"`
	Count    int    `json:"count"`
}

type mathAnswerReq struct {
	TaskID int    `json:"taskId"`
	Value  string `json:"value"`
}

func (s *Server) mountMath(r chi.Router) {
	r.Route("/math", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req mathStartReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			plan := session.Plan{App: crowns.AppMath, Level: req.Level, Adaptive: req.Adaptive, Count: req.Count}
			if req.Operator != "" {
				op, ok := problemgen.ParseOperator(req.Operator)
				if !ok {
					s.fail(w, r, validate.Invalid("operator", "unknown "+req.Operator))
					return
				}
				plan.Operator = op
			}
			s.start(w, r, plan)
		})
		r.Get("/{id}", s.handleGet(crowns.AppMath))
		r.Delete("/{id}", s.handleFinish(crowns.AppMath))
		r.Post("/{id}/answer", func(w http.ResponseWriter, r *http.Request) {
			var req mathAnswerReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.answer(w, r, crowns.AppMath, func(sess session.Session) (session.Outcome, error) {
				return sess.(*session.MathSession).Answer(r.Context(), req.TaskID, req.Value)
			})
		})
	})
}

// ------------------------------- letters -----------------------------------

type letterStartReq struct {
	Level int `json:"level"`
}

type letterSelectReq struct {
	TaskID int    `json:"taskId"`
	Word   string `json:"word"`
}

func (s *Server) mountLetters(r chi.Router) {
	r.Route("/letters", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req letterStartReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.start(w, r, session.Plan{App: crowns.AppLetters, Level: req.Level})
		})
		r.Get("/{id}", s.handleGet(crowns.AppLetters))
		r.Delete("/{id}", s.handleFinish(crowns.AppLetters))
		r.Post("/{id}/select", func(w http.ResponseWriter, r *http.Request) {
			var req letterSelectReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.answer(w, r, crowns.AppLetters, func(sess session.Session) (session.Outcome, error) {
				return sess.(*session.LetterSession).Select(r.Context(), req.TaskID, req.Word)
			})
		})
	})
}

// ------------------------------- sudoku ------------------------------------

type sudokuStartReq struct {
	Difficulty int `json:"difficulty"`
}

type sudokuCellReq struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

type sudokuRes struct {
	Outcome session.SudokuOutcome `json:"outcome"`
	Session session.Snapshot      `json:"session"`
}

func (s *Server) mountSudoku(r chi.Router) {
	r.Route("/sudoku", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req sudokuStartReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.start(w, r, session.Plan{App: crowns.AppSudoku, Level: req.Difficulty})
		})
		r.Get("/{id}", s.handleGet(crowns.AppSudoku))
		r.Delete("/{id}", s.handleFinish(crowns.AppSudoku))
		r.Put("/{id}/cell", func(w http.ResponseWriter, r *http.Request) {
			var req sudokuCellReq
			if err := decode(r, &req); err != nil {
				s.fail(w, r, err)
				return
			}
			s.sudokuMove(w, r, func(sess *session.SudokuSession) (session.SudokuOutcome, error) {
				return sess.Set(r.Context(), req.Row, req.Col, req.Value)
			})
		})
		r.Post("/{id}/hint", func(w http.ResponseWriter, r *http.Request) {
			s.sudokuMove(w, r, func(sess *session.SudokuSession) (session.SudokuOutcome, error) {
				return sess.Hint(r.Context())
			})
		})
	})
}

func (s *Server) sudokuMove(w http.ResponseWriter, r *http.Request, fn func(*session.SudokuSession) (session.SudokuOutcome, error)) {
	var res sudokuRes
	err := s.sessions.With(chi.URLParam(r, "id"), crowns.AppSudoku, func(sess session.Session) error {
		game := sess.(*session.SudokuSession)
		out, err := fn(game)
		if err != nil {
			return err
		}
		res = sudokuRes{Outcome: out, Session: game.Snapshot()}
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
