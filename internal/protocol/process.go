package protocol

import (
	"github.com/elucid503/playerpp/v2/internal/bridge"
	"github.com/elucid503/playerpp/v2/internal/preprocess"
	"github.com/sirupsen/logrus"
)

// Process runs the decoded Input end to end using the named runtime backend
// and returns the top-level Output, per spec.md §7's propagation policy:
// preprocessing and bridge-initialization failures abort the whole request
// as a top-level Error; per-challenge runtime failures degrade only the
// enclosing Response.
func Process(input *Input, runtimeName string) Output {
	program, outputPreprocessed, requests, err := resolveProgram(input)
	if err != nil {
		return NewErrorOutput(err.Error())
	}

	rt, err := bridge.New(runtimeName)
	if err != nil {
		return NewErrorOutput(err.Error())
	}
	if err := rt.Load(program); err != nil {
		return NewErrorOutput(err.Error())
	}

	responses := make([]Response, len(requests))
	for i, req := range requests {
		responses[i] = processRequest(rt, req)
	}

	var preprocessedOut *string
	if outputPreprocessed {
		p := program
		preprocessedOut = &p
	}

	return NewResultOutput(preprocessedOut, responses)
}

func resolveProgram(input *Input) (program string, outputPreprocessed bool, requests []Request, err error) {
	if input.Player != nil {
		program, err = preprocess.Run(input.Player.Player)
		if err != nil {
			return "", false, nil, err
		}
		return program, input.Player.OutputPreprocessed, input.Player.Requests, nil
	}
	return input.Preprocessed.PreprocessedPlayer, false, input.Preprocessed.Requests, nil
}

func processRequest(rt bridge.Runtime, req Request) Response {
	data := make(map[string]string, len(req.Challenges))
	for _, c := range req.Challenges {
		answer, err := rt.Solve(string(req.Type), c)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"kind":      req.Type,
				"challenge": c,
			}).Warn("protocol: challenge solve failed")
			return NewErrorResponse(err.Error())
		}
		data[c] = answer
	}
	return NewResultResponse(data)
}
