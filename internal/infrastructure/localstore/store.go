// Package localstore implementa o armazenamento local de fallback: um blob
// JSON por tipo de entidade, gravado em arquivo sob um slot de nome fixo
// (ct-users, ct-clients, ...). É o equivalente do armazenamento chave/valor
// do navegador na versão original do sistema: o meio é só texto, e campos de
// data são reconstruídos a cada leitura pela (de)serialização JSON.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Slots fixos, um por tipo de entidade.
const (
	SlotUsers         = "ct-users"
	SlotClients       = "ct-clients"
	SlotCashFlows     = "ct-cash-flows"
	SlotNotifications = "ct-notifications"
	SlotChatChannels  = "ct-chat-channels"
	SlotChatMessages  = "ct-chat-messages"
	SlotContacts      = "ct-ztalk-contacts"
	SlotConversations = "ct-ztalk-conversations"
	SlotZTalkMessages = "ct-ztalk-messages"
	SlotQueues        = "ct-ztalk-queues"
	SlotBroadcasts    = "ct-ztalk-broadcasts"
	SlotReports       = "ct-reports"
)

// Store grava um blob por slot em disco. Toda mutação é um
// read-modify-write do blob inteiro, serializado por um lock único.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Open prepara o diretório de dados e devolve o store.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localstore: diretório vazio")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: criar diretório: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir devolve o diretório de dados em uso.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// ReadBlob devolve o conteúdo bruto do slot; slot inexistente devolve nil.
func (s *Store) ReadBlob(slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(slot)
}

// WriteBlob substitui o conteúdo do slot.
func (s *Store) WriteBlob(slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(slot, data)
}

// Update aplica fn ao blob do slot segurando o lock de escrita durante o
// ciclo leitura-modificação-gravação inteiro: mutações concorrentes no mesmo
// slot não se sobrescrevem. fn recebe o conteúdo atual (nil quando o slot
// não existe) e devolve o conteúdo a gravar.
func (s *Store) Update(slot string, fn func(data []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read(slot)
	if err != nil {
		return err
	}
	out, err := fn(data)
	if err != nil {
		return err
	}
	return s.write(slot, out)
}

func (s *Store) read(slot string) ([]byte, error) {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: ler %s: %w", slot, err)
	}
	return data, nil
}

// write grava num arquivo temporário do mesmo diretório e renomeia por cima,
// para que uma queda no meio da gravação não trunque o blob.
func (s *Store) write(slot string, data []byte) error {
	path := s.path(slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: gravar %s: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: gravar %s: %w", slot, err)
	}
	return nil
}
