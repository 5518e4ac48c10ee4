package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/golay/benchmarking"
	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/linearblock"
	"github.com/nathanhack/golay/linearblock/golay"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

//SimulationStats are the results of a channel simulation keyed by the
// channel parameter (crossover probability or E_b/N_0).
type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

func LoadLinearBlockECC(filepath string) (*linearblock.LinearBlock, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var ecc linearblock.LinearBlock
	err = json.Unmarshal(bs, &ecc)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}
	if ecc.H == nil || ecc.Processing == nil || ecc.Processing.G == nil {
		return nil, fmt.Errorf("file %v does not contain a linearblock ECC", filepath)
	}

	return &ecc, nil
}

// LoadResults returns nil, nil when filepath does not exist yet.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// LoadOrCreateResults loads the results in filepath and checks they were made
// by the same simulation type and code, a new empty set is returned when the
// file does not exist.
func LoadOrCreateResults(filepath, typeInfo, eccInfo string) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	//if data is nil then we create it
	if data == nil {
		return &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}, nil
	}

	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, errors.New("results loaded do not match the ECC")
	}
	if data.Stats == nil {
		data.Stats = make(map[float64]benchmarking.Stats)
	}
	return data, nil
}

//Trial runs trials of a single channel parameter continuing from previousStats.
type Trial func(ctx context.Context, parameter float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

// RunSimulation grows every parameter's trial count in steps until trials is reached,
// saving to outputFilename as it goes so an interrupted run can be continued.
func RunSimulation(ctx context.Context, data *SimulationStats, parameters []float64, trials, threads int, outputFilename string, trial Trial) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	trialsPerIter := threads * 10
	bar := pb.StartNew(trials * len(parameters))
trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range parameters {
			parameter := p
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[parameter] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						logrus.Error(err)
					}
				}
				checkpointCount++
			}
			before := data.Stats[parameter].ChannelCodewordError.Count
			stats := trial(ctx, parameter, min(t, trials), threads, data.Stats[parameter], checkpoint)

			checkpointMux.Lock()
			data.Stats[parameter] = stats
			checkpointMux.Unlock()
			bar.Add(stats.ChannelCodewordError.Count - before)
		}

		if t >= trials {
			break
		}
	}
	bar.Finish()

	err := SaveResults(outputFilename, data)
	if err != nil {
		fmt.Println(err)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

//Code adapts the golay code to the benchmarking functions.
type Code struct {
	*golay.Code
}

func NewCode() (*Code, error) {
	code, err := golay.New()
	if err != nil {
		return nil, err
	}
	return &Code{code}, nil
}

func (c *Code) CreateMessage(trial int) bits.Vector {
	return benchmarking.RandomMessage(golay.MessageLength)
}

func (c *Code) EncodeMessage(message bits.Vector) bits.Vector {
	codeword, err := c.Encode(message)
	if err != nil {
		panic(err)
	}
	return codeword
}

// Repair corrects the received word, on a decoding failure the received word is returned with the error.
func (c *Code) Repair(originalCodeword, channelInducedCodeword bits.Vector) (bits.Vector, error) {
	fixed, err := c.Correct(golay.Extend(channelInducedCodeword))
	if err != nil {
		return channelInducedCodeword, err
	}
	return fixed.Slice(0, golay.CodewordLength), nil
}

func (c *Code) Metrics(originalMessage, originalCodeword, fixedChannelInducedCodeword bits.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
	codewordErrors := benchmarking.HammingDistance(originalCodeword, fixedChannelInducedCodeword)
	message := fixedChannelInducedCodeword.Slice(0, golay.MessageLength)
	messageErrors := benchmarking.HammingDistance(message, originalMessage)
	parityErrors := codewordErrors - messageErrors

	percentFixedCodewordErrors = float64(codewordErrors) / float64(golay.CodewordLength)
	percentFixedMessageErrors = float64(messageErrors) / float64(golay.MessageLength)
	percentFixedParityErrors = float64(parityErrors) / float64(golay.CodewordLength-golay.MessageLength)
	return
}

// Run benchmarks the code over channel.
func (c *Code) Run(ctx context.Context, trials, threads int, channel benchmarking.BinarySymmetricChannel, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, c.CreateMessage, c.EncodeMessage, channel, c.Repair, c.Metrics, checkpoints, previousStats, false)
}

// Info describes a linearblock ECC.
func Info(ctx context.Context, ecc *linearblock.LinearBlock, threads int) string {
	return fmt.Sprintf("(%v,%v) linearblock, %v parity symbols, code rate %0.4f, girth %v, valid: %v, generator check: %v, md5: %v",
		ecc.CodewordLength(), ecc.MessageLength(), ecc.ParitySymbols(),
		ecc.CodeRate(), ecc.Girth(ctx, threads), ecc.Validate(), ecc.CheckGenerator(), Md5Sum(ecc.H))
}

// ParseParameters converts the channel parameters given on the command line.
func ParseParameters(values []string) ([]float64, error) {
	parameters := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid channel parameter %q: %w", v, err)
		}
		parameters = append(parameters, f)
	}
	slices.Sort(parameters)
	return slices.Compact(parameters), nil
}

// Metric picks the value reported for a set of stats.
type Metric func(stats benchmarking.Stats) float64

func SelectMetric(message, parity, failure bool) Metric {
	switch {
	case message:
		return func(s benchmarking.Stats) float64 { return s.ChannelMessageError.Mean }
	case parity:
		return func(s benchmarking.Stats) float64 { return s.ChannelParityError.Mean }
	case failure:
		return func(s benchmarking.Stats) float64 { return s.DecodingFailure.Mean }
	default:
		return func(s benchmarking.Stats) float64 { return s.ChannelCodewordError.Mean }
	}
}

// LoadAllResults loads every results file, all of them must exist.
func LoadAllResults(files []string) ([]*SimulationStats, error) {
	stats := make([]*SimulationStats, len(files))
	for i, resultFile := range files {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
	}
	return stats, nil
}

// Parameters returns the sorted union of the channel parameters in stats.
func Parameters(stats []*SimulationStats) []float64 {
	parameters := make([]float64, 0)
	for _, s := range stats {
		for p := range s.Stats {
			parameters = append(parameters, p)
		}
	}
	slices.Sort(parameters)
	return slices.Compact(parameters)
}
