package service

import (
	"huffpack/internal/codec"
	"huffpack/internal/logger"
)

// CodecService runs compression jobs on behalf of the transport layer.
type CodecService struct {
	logger logger.Logger
}

func NewCodecService(l logger.Logger) *CodecService {
	return &CodecService{logger: l}
}

func (s *CodecService) Compress(data []byte) ([]byte, error) {
	out, err := codec.Encode(data)
	if err != nil {
		s.logger.Errorf("compress: %v", err)
		return nil, err
	}
	s.logger.Infof("compressed %d bytes into a %d byte container", len(data), len(out))
	return out, nil
}

func (s *CodecService) Decompress(container []byte) ([]byte, error) {
	out, err := codec.Decode(container)
	if err != nil {
		s.logger.Errorf("decompress: %v", err)
		return nil, err
	}
	s.logger.Infof("decompressed a %d byte container into %d bytes", len(container), len(out))
	return out, nil
}
